package memory

import (
	"time"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
)

// Store almacén en proceso que implementa todos los puertos de repository.
// Se usa en tests y con STORE_DRIVER=memory; los datos se pierden al reiniciar.
type Store struct {
	productTypes  *table[entity.ProductType]
	productBrands *table[entity.ProductBrand]
	warehouses    *table[entity.Warehouse]
	vehicles      *table[entity.Vehicle]
	products      *table[entity.Product]
	inflows       *table[entity.StockInflow]
	outflows      *table[entity.StockOutflow]
	users         *table[entity.User]

	locks       *keyedLock
	lockTimeout time.Duration
}

// NewStore crea un almacén vacío. lockTimeout es la espera máxima por el lock de un
// par (producto, depósito) antes de devolver ErrConflict; 0 espera indefinidamente.
func NewStore(lockTimeout time.Duration) *Store {
	return &Store{
		productTypes:  newTable[entity.ProductType](),
		productBrands: newTable[entity.ProductBrand](),
		warehouses:    newTable[entity.Warehouse](),
		vehicles:      newTable[entity.Vehicle](),
		products:      newTable[entity.Product](),
		inflows:       newTable[entity.StockInflow](),
		outflows:      newTable[entity.StockOutflow](),
		users:         newTable[entity.User](),
		locks:         newKeyedLock(),
		lockTimeout:   lockTimeout,
	}
}

func (s *Store) ProductTypes() *ProductTypeRepo   { return &ProductTypeRepo{t: s.productTypes} }
func (s *Store) ProductBrands() *ProductBrandRepo { return &ProductBrandRepo{t: s.productBrands} }
func (s *Store) Warehouses() *WarehouseRepo       { return &WarehouseRepo{t: s.warehouses} }
func (s *Store) Vehicles() *VehicleRepo           { return &VehicleRepo{t: s.vehicles} }
func (s *Store) Products() *ProductRepo           { return &ProductRepo{t: s.products} }
func (s *Store) Inflows() *StockInflowRepo        { return &StockInflowRepo{t: s.inflows} }
func (s *Store) Outflows() *StockOutflowRepo      { return &StockOutflowRepo{t: s.outflows} }
func (s *Store) Users() *UserRepo                 { return &UserRepo{t: s.users} }
