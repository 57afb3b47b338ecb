package service

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/hugohenrick/armazem/internal/domain/customer"
	"github.com/hugohenrick/armazem/internal/domain/street"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
	"github.com/hugohenrick/armazem/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	customerID = "0b8f2f4e-3c3a-4d4c-9c55-5f4c0f1e2d3a"
	takeUpID   = "7d3e9a10-1b2c-4d5e-8f90-a1b2c3d4e5f6"
)

func TestStreetService_CreateValidatesAndInvalidates(t *testing.T) {
	inv := &recordingInvalidator{}
	svc := NewStreetService(&fakeStreets{}, inv, logger.NewNop())

	_, err := svc.Create(context.Background(), street.Input{Name: "   "})
	assert.Equal(t, []string{"Campo obrigatório"}, fieldMessages(t, err, "name"))
	assert.Empty(t, inv.paths)

	s, err := svc.Create(context.Background(), street.Input{Name: "  Rua Beta "})
	require.NoError(t, err)
	assert.Equal(t, "Rua Beta", s.Name)
	assert.Equal(t, []string{pathStreets, pathDashboard}, inv.paths)
}

func TestStreetService_ListSearchAndSort(t *testing.T) {
	repo := &fakeStreets{streets: []*street.Street{
		{ID: 1, Name: "Rua Gama"},
		{ID: 2, Name: "Rua Alfa"},
		{ID: 3, Name: "Avenida Beta"},
	}}
	svc := NewStreetService(repo, &recordingInvalidator{}, logger.NewNop())

	page, err := svc.List(context.Background(), ListParams{Query: "RUA", SortBy: "name"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Rua Alfa", page.Items[0].Name)
	assert.Equal(t, "Rua Gama", page.Items[1].Name)

	// A ordem do backend não é alterada pela listagem.
	assert.Equal(t, "Rua Gama", repo.streets[0].Name)
}

func TestAddressService_StreetMustExist(t *testing.T) {
	streets := &fakeStreets{streets: []*street.Street{{ID: 1, Name: "Rua Alfa"}}}
	addresses := &fakeAddresses{}
	svc := NewAddressService(addresses, streets, &recordingInvalidator{}, logger.NewNop())

	_, err := svc.Create(context.Background(), address.Input{StreetID: 7, Number: "10", Status: address.StatusEmpty})
	assert.Equal(t, []string{msgStreetNotFound}, fieldMessages(t, err, "streetId"))

	_, err = svc.Create(context.Background(), address.Input{StreetID: 1, Number: "10", Status: "cheio"})
	assert.NotEmpty(t, fieldMessages(t, err, "status"))

	a, err := svc.Create(context.Background(), address.Input{StreetID: 1, Number: " 10 ", Status: address.StatusEmpty})
	require.NoError(t, err)
	assert.Equal(t, "10", a.Number)
}

func TestAddressService_BackendFailureIsNotValidation(t *testing.T) {
	streets := &fakeStreets{err: backend.ErrUnavailable}
	svc := NewAddressService(&fakeAddresses{}, streets, &recordingInvalidator{}, logger.NewNop())

	_, err := svc.Create(context.Background(), address.Input{StreetID: 1, Number: "1", Status: address.StatusEmpty})
	assert.ErrorIs(t, err, backend.ErrUnavailable)
}

func TestAddressService_ListFilters(t *testing.T) {
	addresses := &fakeAddresses{addresses: []*address.Address{
		{ID: "A1", Street: address.StreetRef{ID: 1, Name: "Rua Alfa"}, Number: "1", Status: address.StatusFilled},
		{ID: "A2", Street: address.StreetRef{ID: 1, Name: "Rua Alfa"}, Number: "2", Status: address.StatusEmpty},
		{ID: "A3", Street: address.StreetRef{ID: 2, Name: "Rua Beta"}, Number: "1", Status: address.StatusEmpty},
	}}
	streets := &fakeStreets{streets: []*street.Street{{ID: 1}, {ID: 2}}}
	svc := NewAddressService(addresses, streets, &recordingInvalidator{}, logger.NewNop())
	ctx := context.Background()

	page, err := svc.List(ctx, AddressFilter{Status: address.StatusEmpty}, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	page, err = svc.ListByStreet(ctx, 1, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	_, err = svc.ListByStreet(ctx, 9, ListParams{})
	assert.True(t, backend.IsNotFound(err))
}

func TestCustomerService_CreateAndOptions(t *testing.T) {
	repo := &fakeCustomers{}
	svc := NewCustomerService(repo, &recordingInvalidator{}, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, customer.Input{Name: "Ac", CNPJ: "12345678000199"})
	assert.NotEmpty(t, fieldMessages(t, err, "name"))
	assert.Equal(t, []string{"CNPJ deve ter o formato XX.XXX.XXX/XXXX-XX"}, fieldMessages(t, err, "cnpj"))

	c, err := svc.Create(ctx, customer.Input{Name: "Acme Ltda", CNPJ: "12.345.678/0001-99"})
	require.NoError(t, err)

	options, err := svc.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, []customer.Option{{Value: c.ID, Label: "Acme Ltda"}}, options)

	updated, err := svc.Update(ctx, c.ID, customer.UpdateInput{Name: "Acme SA"})
	require.NoError(t, err)
	assert.Equal(t, "Acme SA", updated.Name)
	assert.Equal(t, "12.345.678/0001-99", updated.CNPJ)
}

func TestTakeUpService_CustomerMustExist(t *testing.T) {
	customers := &fakeCustomers{customers: []*customer.Customer{{ID: customerID, Name: "Acme"}}}
	svc := NewTakeUpService(&fakeTakeUps{}, &fakePackages{}, customers, &recordingInvalidator{}, logger.NewNop(), fixedClock)
	ctx := context.Background()

	_, err := svc.Create(ctx, takeup.Input{CustomerID: "não-é-uuid"})
	assert.Equal(t, []string{"Deve ser um UUID válido"}, fieldMessages(t, err, "customerId"))

	_, err = svc.Create(ctx, takeup.Input{CustomerID: takeUpID})
	assert.Equal(t, []string{msgCustomerNotFound}, fieldMessages(t, err, "customerId"))

	created, err := svc.Create(ctx, takeup.Input{CustomerID: customerID})
	require.NoError(t, err)
	assert.Equal(t, customerID, created.CustomerID)

	page, err := svc.ListByCustomer(ctx, customerID, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestTakeUpService_Stats(t *testing.T) {
	takeUps := &fakeTakeUps{takeUps: []*takeup.TakeUp{
		{ID: "T1", CreatedAt: fixedNow.Add(-time.Hour), Packages: []*takeup.Package{{ID: "P1"}, {ID: "P2"}}},
		{ID: "T2", CreatedAt: fixedNow.AddDate(0, -2, 0), Packages: []*takeup.Package{{ID: "P3"}}},
	}}
	svc := NewTakeUpService(takeUps, &fakePackages{}, &fakeCustomers{}, &recordingInvalidator{}, logger.NewNop(), fixedClock)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalTakeUps)
	assert.Equal(t, 3, stats.TotalPackages)
	assert.Equal(t, 1, stats.NewTakeUpsThisMonth)
}

func newPackageFixture() (*PackageService, *fakePackages, *recordingInvalidator) {
	packages := &fakePackages{packages: []*takeup.Package{
		{ID: "P1", PackageNumber: "001", Lot: "L1", Weight: decimal.NewFromInt(10), TakeUpID: takeUpID},
		{ID: "P2", PackageNumber: "002", Lot: "L1", Weight: decimal.NewFromInt(5), TakeUpID: takeUpID},
	}}
	takeUps := &fakeTakeUps{takeUps: []*takeup.TakeUp{{ID: takeUpID}}}
	inv := &recordingInvalidator{}
	return NewPackageService(packages, takeUps, inv, logger.NewNop()), packages, inv
}

func TestPackageService_Create(t *testing.T) {
	svc, packages, inv := newPackageFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, takeup.PackageInput{PackageNumber: "003", Lot: "L2", Weight: decimal.Zero, TakeUpID: takeUpID})
	assert.Equal(t, []string{"Peso deve ser maior que 0"}, fieldMessages(t, err, "weight"))

	_, err = svc.Create(ctx, takeup.PackageInput{PackageNumber: "003", Lot: "L2", Weight: decimal.NewFromInt(1), TakeUpID: customerID})
	assert.Equal(t, []string{msgTakeUpNotFound}, fieldMessages(t, err, "takeUpId"))

	_, err = svc.Create(ctx, takeup.PackageInput{PackageNumber: "001", Lot: "L2", Weight: decimal.NewFromInt(1), TakeUpID: takeUpID})
	assert.Equal(t, []string{msgDuplicatedPackageNumber}, fieldMessages(t, err, "packageNumber"))
	assert.Empty(t, packages.created)

	p, err := svc.Create(ctx, takeup.PackageInput{PackageNumber: " 003 ", Lot: "L2", Weight: decimal.RequireFromString("2.5"), TakeUpID: takeUpID})
	require.NoError(t, err)
	assert.Equal(t, "003", p.PackageNumber)
	assert.Contains(t, inv.paths, detail(pathTakeUps, takeUpID))
}

func TestPackageService_UpdateKeepsOwnNumber(t *testing.T) {
	svc, _, _ := newPackageFixture()
	ctx := context.Background()

	p, err := svc.Update(ctx, "P1", takeup.PackageUpdateInput{PackageNumber: "001", Lot: "L9", Weight: decimal.NewFromInt(12)})
	require.NoError(t, err)
	assert.Equal(t, "L9", p.Lot)

	_, err = svc.Update(ctx, "P1", takeup.PackageUpdateInput{PackageNumber: "002", Lot: "L9", Weight: decimal.NewFromInt(12)})
	assert.Equal(t, []string{msgDuplicatedPackageNumber}, fieldMessages(t, err, "packageNumber"))

	_, err = svc.Update(ctx, "P9", takeup.PackageUpdateInput{PackageNumber: "009", Lot: "L9", Weight: decimal.NewFromInt(12)})
	assert.True(t, backend.IsNotFound(err))
}

func TestPackageService_Stats(t *testing.T) {
	svc, _, _ := newPackageFixture()

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPackages)
	assert.Equal(t, "15.00", stats.TotalWeight.StringFixed(2))
	assert.Equal(t, "7.50", stats.AvgWeight.StringFixed(2))
}

func TestDashboardService_Stats(t *testing.T) {
	svc := NewDashboardService(
		&fakeCustomers{customers: []*customer.Customer{{ID: "C1"}}},
		&fakeTakeUps{takeUps: []*takeup.TakeUp{{ID: "T1"}, {ID: "T2"}}},
		&fakePackages{packages: []*takeup.Package{
			{ID: "P1", Weight: decimal.RequireFromString("10.005")},
			{ID: "P2", Weight: decimal.RequireFromString("5.00")},
		}},
		&fakeAddresses{addresses: []*address.Address{
			{ID: "A1", Status: address.StatusFilled},
			{ID: "A2", Status: address.StatusEmpty},
			{ID: "A3", Status: address.StatusEmpty},
		}},
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, 2, stats.TotalTakeUps)
	assert.Equal(t, 2, stats.TotalPackages)
	assert.Equal(t, 3, stats.TotalAddresses)
	assert.Equal(t, 2, stats.EmptyAddresses)
	assert.Equal(t, 1, stats.FilledAddresses)
	assert.Equal(t, "15.01", stats.TotalWeight.StringFixed(2))
	assert.Equal(t, "7.50", stats.AverageWeight.StringFixed(2))
}
