package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tallermunicipal/inventario-api/internal/application/inventory"
	"github.com/tallermunicipal/inventario-api/internal/domain"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las escrituras de cada par (producto, depósito) con un semáforo
// de un lugar por par. Los callbacks del libro escriben como último paso, así que un
// error antes de esa escritura no deja nada persistido.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// RunForStock toma el lock del par, ejecuta fn y lo libera.
func (r *TxRunner) RunForStock(ctx context.Context, productID, warehouseID string, fn func(
	inflows repository.StockInflowRepository,
	outflows repository.StockOutflowRepository,
) error) error {
	release, err := r.store.locks.acquire(ctx, "stock:"+productID+":"+warehouseID, r.store.lockTimeout)
	if err != nil {
		return err
	}
	defer release()
	return fn(r.store.Inflows(), r.store.Outflows())
}

// keyedLock un mutex por clave, cancelable por contexto y con espera máxima.
type keyedLock struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

func newKeyedLock() *keyedLock {
	return &keyedLock{slots: make(map[string]*slot)}
}

func (k *keyedLock) acquire(ctx context.Context, key string, timeout time.Duration) (func(), error) {
	k.mu.Lock()
	s, ok := k.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		k.slots[key] = s
	}
	s.refs++
	k.mu.Unlock()

	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case s.ch <- struct{}{}:
		return func() {
			<-s.ch
			k.unref(key, s)
		}, nil
	case <-timer:
		k.unref(key, s)
		return nil, fmt.Errorf("%w: tiempo de espera agotado para %s", domain.ErrConflict, key)
	case <-ctx.Done():
		k.unref(key, s)
		return nil, fmt.Errorf("%w: %v", domain.ErrConflict, ctx.Err())
	}
}

func (k *keyedLock) unref(key string, s *slot) {
	k.mu.Lock()
	defer k.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(k.slots, key)
	}
}
