package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/hugohenrick/armazem/internal/domain/customer"
	"github.com/hugohenrick/armazem/internal/domain/enderecamento"
	"github.com/hugohenrick/armazem/internal/domain/expedicao"
	"github.com/hugohenrick/armazem/internal/domain/street"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func notFoundErr(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, backend.ErrNotFound)
}

type recordingInvalidator struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, paths ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, paths...)
}

type fakeStreets struct {
	streets []*street.Street
	err     error
}

func (f *fakeStreets) List(context.Context) ([]*street.Street, error) { return f.streets, f.err }

func (f *fakeStreets) FindByID(_ context.Context, id int64) (*street.Street, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.streets {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, notFoundErr("rua", fmt.Sprint(id))
}

func (f *fakeStreets) Create(_ context.Context, in street.Input) (*street.Street, error) {
	s := &street.Street{ID: int64(len(f.streets) + 1), Name: in.Name}
	f.streets = append(f.streets, s)
	return s, nil
}

func (f *fakeStreets) Update(ctx context.Context, id int64, in street.Input) (*street.Street, error) {
	s, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Name = in.Name
	return s, nil
}

func (f *fakeStreets) Delete(context.Context, int64) error { return nil }

type fakeAddresses struct {
	addresses []*address.Address
	updateErr error
	updates   int
}

func (f *fakeAddresses) List(context.Context) ([]*address.Address, error) {
	// O backend devolve cópias novas a cada leitura.
	out := make([]*address.Address, 0, len(f.addresses))
	for _, a := range f.addresses {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeAddresses) FindByID(_ context.Context, id string) (*address.Address, error) {
	for _, a := range f.addresses {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, notFoundErr("endereço", id)
}

func (f *fakeAddresses) Create(_ context.Context, in address.Input) (*address.Address, error) {
	a := &address.Address{ID: fmt.Sprintf("A%d", len(f.addresses)+1), Number: in.Number, Status: in.Status}
	f.addresses = append(f.addresses, a)
	return a, nil
}

func (f *fakeAddresses) Update(_ context.Context, id string, in address.Input) (*address.Address, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for _, a := range f.addresses {
		if a.ID == id {
			f.updates++
			a.Number = in.Number
			a.Complement = in.Complement
			a.Status = in.Status
			c := *a
			return &c, nil
		}
	}
	return nil, notFoundErr("endereço", id)
}

func (f *fakeAddresses) Delete(context.Context, string) error { return nil }

type fakePackages struct {
	packages []*takeup.Package
	created  []takeup.PackageInput
}

func (f *fakePackages) List(context.Context) ([]*takeup.Package, error) { return f.packages, nil }

func (f *fakePackages) ListByTakeUp(_ context.Context, takeUpID string) ([]*takeup.Package, error) {
	out := make([]*takeup.Package, 0)
	for _, p := range f.packages {
		if p.TakeUpID == takeUpID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePackages) FindByID(_ context.Context, id string) (*takeup.Package, error) {
	for _, p := range f.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, notFoundErr("pacote", id)
}

func (f *fakePackages) Create(_ context.Context, in takeup.PackageInput) (*takeup.Package, error) {
	f.created = append(f.created, in)
	p := &takeup.Package{ID: uuid.NewString(), PackageNumber: in.PackageNumber, Lot: in.Lot, Weight: in.Weight, TakeUpID: in.TakeUpID}
	f.packages = append(f.packages, p)
	return p, nil
}

func (f *fakePackages) Update(ctx context.Context, id string, in takeup.PackageUpdateInput) (*takeup.Package, error) {
	p, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.PackageNumber, p.Lot, p.Weight = in.PackageNumber, in.Lot, in.Weight
	return p, nil
}

func (f *fakePackages) Delete(context.Context, string) error { return nil }

type fakeTakeUps struct {
	takeUps []*takeup.TakeUp
	err     error
}

func (f *fakeTakeUps) List(context.Context) ([]*takeup.TakeUp, error) { return f.takeUps, f.err }

func (f *fakeTakeUps) FindByID(_ context.Context, id string) (*takeup.TakeUp, error) {
	for _, t := range f.takeUps {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, notFoundErr("take-up", id)
}

func (f *fakeTakeUps) Create(_ context.Context, in takeup.Input) (*takeup.TakeUp, error) {
	t := &takeup.TakeUp{ID: uuid.NewString(), CustomerID: in.CustomerID}
	f.takeUps = append(f.takeUps, t)
	return t, nil
}

func (f *fakeTakeUps) Update(ctx context.Context, id string, in takeup.Input) (*takeup.TakeUp, error) {
	t, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.CustomerID = in.CustomerID
	return t, nil
}

func (f *fakeTakeUps) Delete(context.Context, string) error { return nil }

type fakeCustomers struct {
	customers []*customer.Customer
}

func (f *fakeCustomers) List(context.Context) ([]*customer.Customer, error) { return f.customers, nil }

func (f *fakeCustomers) FindByID(_ context.Context, id string) (*customer.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, notFoundErr("cliente", id)
}

func (f *fakeCustomers) Create(_ context.Context, in customer.Input) (*customer.Customer, error) {
	c := &customer.Customer{ID: uuid.NewString(), Name: in.Name, CNPJ: in.CNPJ}
	f.customers = append(f.customers, c)
	return c, nil
}

func (f *fakeCustomers) Update(ctx context.Context, id string, in customer.UpdateInput) (*customer.Customer, error) {
	c, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.CNPJ != "" {
		c.CNPJ = in.CNPJ
	}
	return c, nil
}

func (f *fakeCustomers) Delete(context.Context, string) error { return nil }

type fakeLedger struct {
	records   []*enderecamento.Record
	createErr error
}

func (f *fakeLedger) List(context.Context) ([]*enderecamento.Record, error) {
	return append([]*enderecamento.Record(nil), f.records...), nil
}

func (f *fakeLedger) Create(_ context.Context, r *enderecamento.Record) error {
	if f.createErr != nil {
		return f.createErr
	}
	return f.insert(r)
}

func (f *fakeLedger) Reserve(_ context.Context, r *enderecamento.Record, discard []uuid.UUID) error {
	if f.createErr != nil {
		return f.createErr
	}
	before := f.records
	kept := make([]*enderecamento.Record, 0, len(f.records))
	for _, existing := range f.records {
		if !slices.Contains(discard, existing.ID) {
			kept = append(kept, existing)
		}
	}
	f.records = kept
	if err := f.insert(r); err != nil {
		f.records = before
		return err
	}
	return nil
}

func (f *fakeLedger) insert(r *enderecamento.Record) error {
	for _, existing := range f.records {
		if existing.AddressID == r.AddressID {
			return enderecamento.ErrAddressAlreadyAssigned
		}
		if existing.PackageID == r.PackageID {
			return enderecamento.ErrPackageAlreadyAssigned
		}
	}
	f.records = append(f.records, r)
	return nil
}

func (f *fakeLedger) DeleteByAddress(_ context.Context, addressID string) error {
	for i, r := range f.records {
		if r.AddressID == addressID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return enderecamento.ErrRecordNotFound
}

func (f *fakeLedger) Delete(_ context.Context, id uuid.UUID) error {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return enderecamento.ErrRecordNotFound
}

type fakeExpedicoes struct {
	expedicoes  []*expedicao.Expedicao
	changes     []expedicao.StatusChange
	emptyUpdate bool
	searched    string
}

func (f *fakeExpedicoes) List(context.Context) ([]*expedicao.Expedicao, error) {
	return f.expedicoes, nil
}

func (f *fakeExpedicoes) Search(_ context.Context, query string) ([]*expedicao.Expedicao, error) {
	f.searched = query
	return f.expedicoes[:1], nil
}

func (f *fakeExpedicoes) FindByID(_ context.Context, id string) (*expedicao.Expedicao, error) {
	for _, e := range f.expedicoes {
		if e.ID == id {
			c := *e
			return &c, nil
		}
	}
	return nil, notFoundErr("expedição", id)
}

func (f *fakeExpedicoes) Create(_ context.Context, in expedicao.Input) (*expedicao.Expedicao, error) {
	e := &expedicao.Expedicao{ID: uuid.NewString(), Code: in.Code, Status: expedicao.StatusPreparando, PackageCount: len(in.PackageIDs), CreatedAt: fixedNow}
	f.expedicoes = append(f.expedicoes, e)
	return e, nil
}

func (f *fakeExpedicoes) UpdateStatus(_ context.Context, id string, change expedicao.StatusChange) (*expedicao.Expedicao, error) {
	f.changes = append(f.changes, change)
	if f.emptyUpdate {
		return &expedicao.Expedicao{}, nil
	}
	for _, e := range f.expedicoes {
		if e.ID == id {
			e.Status = change.Status
			e.ActualDelivery = change.ActualDelivery
			c := *e
			return &c, nil
		}
	}
	return nil, notFoundErr("expedição", id)
}

func (f *fakeExpedicoes) Delete(context.Context, string) error { return nil }

func (f *fakeExpedicoes) AvailablePackages(context.Context) ([]*takeup.Package, error) {
	return []*takeup.Package{{ID: "P9", Weight: decimal.NewFromInt(1)}}, nil
}
