package inventory

import "github.com/tallermunicipal/inventario-api/internal/domain/entity"

// Available stock disponible de un par (producto, depósito) a partir de los totales
// ingresados y egresados. Los totales incluyen movimientos dados de baja: una baja
// lógica no borra el hecho de que el movimiento ocurrió.
func Available(totalIn, totalOut int64) int64 {
	return totalIn - totalOut
}

// CanWithdraw indica si se pueden retirar qty unidades con el disponible dado.
func CanWithdraw(available, qty int64) bool {
	return qty > 0 && qty <= available
}

// PairKey identifica un par (producto, depósito).
type PairKey struct {
	ProductID   string
	WarehouseID string
}

// NetByPair acumula ingresos en positivo y egresos en negativo por par.
// Solo cuenta movimientos activos, que es lo que muestran los reportes.
func NetByPair(inflows []*entity.StockInflow, outflows []*entity.StockOutflow) map[PairKey]int64 {
	net := make(map[PairKey]int64)
	for _, in := range inflows {
		if in.Status != entity.StatusActive {
			continue
		}
		net[PairKey{in.ProductID, in.WarehouseID}] += in.Quantity
	}
	for _, out := range outflows {
		if out.Status != entity.StatusActive {
			continue
		}
		net[PairKey{out.ProductID, out.WarehouseID}] -= out.Quantity
	}
	return net
}

// NetByWarehouse igual que NetByPair pero agrupando solo por depósito.
func NetByWarehouse(inflows []*entity.StockInflow, outflows []*entity.StockOutflow) map[string]int64 {
	net := make(map[string]int64)
	for k, v := range NetByPair(inflows, outflows) {
		net[k.WarehouseID] += v
	}
	return net
}
