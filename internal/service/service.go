package service

import (
	"errors"
	"time"
)

// ErrNotFound indica que o registro pedido não existe entre os dados atuais
var ErrNotFound = errors.New("registro não encontrado")

// Páginas do painel revalidadas após cada alteração
const (
	pathDashboard      = "/dashboard"
	pathStreets        = "/dashboard/rua"
	pathAddresses      = "/dashboard/enderecos"
	pathCustomers      = "/dashboard/clientes"
	pathTakeUps        = "/dashboard/take-up"
	pathPackages       = "/dashboard/pacotes"
	pathEnderecamentos = "/dashboard/enderecamento"
	pathExpedicoes     = "/dashboard/expedicao"
)

// Clock retorna o instante atual
type Clock func() time.Time

func detail(base, id string) string {
	return base + "/" + id
}
