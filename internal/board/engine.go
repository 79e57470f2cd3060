package board

import (
	"context"
	"fmt"
	"sync"

	"github.com/pearstand/pear-backend/internal/schedule"
	"github.com/pearstand/pear-backend/pkg/db/models"
	pkgerrors "github.com/pearstand/pear-backend/pkg/errors"
	"github.com/pearstand/pear-backend/pkg/types"
)

// UnscheduledKey addresses the lane holding orders without a pickup date.
// Bucket keys are YYYY-MM-DD strings, so the name can never collide.
const UnscheduledKey = "unscheduled"

// State is the engine's drag lifecycle position.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateReconciling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateReconciling:
		return "reconciling"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Rescheduler persists the pickup-date change that ends a cross-bucket drag.
// A nil date moves the order to the unscheduled lane.
type Rescheduler interface {
	Reschedule(ctx context.Context, orderID int64, date *types.Date) error
}

// Fetcher loads the authoritative order list for the engine's window, dated
// orders and unscheduled ones alike.
type Fetcher interface {
	FetchOrders(ctx context.Context, base types.Date) ([]models.Order, error)
}

// ErrSuperseded is returned by Refresh when a newer refresh started while
// this one was in flight; the late result was discarded.
var ErrSuperseded = pkgerrors.New(pkgerrors.CodeConflict, "refresh superseded")

type gesture struct {
	orderID    int64
	sourceKey  string
	currentKey string
	snapshot   schedule.Partition[models.Order]
}

// Engine is the optimistic drag state machine over a partitioned calendar
// board. Drag calls are made from a single UI goroutine; the mutex exists so
// an async Refresh completion cannot interleave with a gesture.
type Engine struct {
	mu      sync.Mutex
	resched Rescheduler
	fetch   Fetcher

	base   types.Date
	window int

	state     State
	partition schedule.Partition[models.Order]
	drag      *gesture

	refreshCancel context.CancelFunc
	refreshGen    uint64
}

// NewEngine builds an engine for the window starting at base. Load or
// Refresh must run before the first gesture.
func NewEngine(resched Rescheduler, fetch Fetcher, base types.Date, windowDays int) (*Engine, error) {
	if resched == nil {
		return nil, fmt.Errorf("rescheduler required")
	}
	if fetch == nil {
		return nil, fmt.Errorf("fetcher required")
	}
	if base.IsZero() {
		return nil, fmt.Errorf("base date required")
	}
	if windowDays <= 0 {
		return nil, fmt.Errorf("window days must be positive")
	}
	return &Engine{
		resched:   resched,
		fetch:     fetch,
		base:      base,
		window:    windowDays,
		partition: schedule.New(base, windowDays, nil, orderPickupDate),
	}, nil
}

func orderPickupDate(o models.Order) *types.Date { return o.PickupDate }

// Load replaces the board with a fresh partition of the given orders.
// An active gesture is dropped.
func (e *Engine) Load(orders []models.Order) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.apply(orders)
}

// SetBase repoints the window and discards the current board; the caller is
// expected to Refresh afterwards.
func (e *Engine) SetBase(base types.Date) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.base = base
	e.apply(nil)
}

// State reports the current lifecycle position.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Bucket returns a copy of the named bucket's order list. UnscheduledKey
// addresses the unscheduled lane.
func (e *Engine) Bucket(key string) []models.Order {
	e.mu.Lock()
	defer e.mu.Unlock()
	if key == UnscheduledKey {
		return append([]models.Order(nil), e.partition.Unscheduled...)
	}
	return append([]models.Order(nil), e.partition.Buckets[key]...)
}

// Keys returns the window's bucket keys in ascending order.
func (e *Engine) Keys() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.partition.Keys...)
}

// Snapshot returns a deep copy of the whole board.
func (e *Engine) Snapshot() schedule.Partition[models.Order] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clonePartition(e.partition)
}

// DragStart begins a gesture for the given order. Only one gesture can be
// active; the pre-drag board is snapshotted for Cancel.
func (e *Engine) DragStart(orderID int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateIdle {
		return pkgerrors.New(pkgerrors.CodeConflict, "drag already active")
	}
	key, ok := e.locate(orderID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not on board")
	}

	e.drag = &gesture{
		orderID:    orderID,
		sourceKey:  key,
		currentKey: key,
		snapshot:   clonePartition(e.partition),
	}
	e.state = StateDragging
	return nil
}

// DragOver optimistically splices the dragged order into targetKey at index.
// Out-of-range indexes append. Moving into a dated bucket sets the order's
// local pickup date to that key; moving into the unscheduled lane clears it.
func (e *Engine) DragOver(targetKey string, index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateDragging {
		return pkgerrors.New(pkgerrors.CodeConflict, "no drag in progress")
	}
	if targetKey != UnscheduledKey && !e.partition.Contains(targetKey) {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown bucket "+targetKey)
	}

	order, ok := e.remove(e.drag.currentKey, e.drag.orderID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeInternal, "dragged order lost")
	}

	if targetKey == UnscheduledKey {
		order.PickupDate = nil
	} else {
		date, err := types.ParseDate(targetKey)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "bucket key not a date")
		}
		order.PickupDate = &date
	}

	e.insert(targetKey, order, index)
	e.drag.currentKey = targetKey
	return nil
}

// DragEnd finishes the gesture. A cross-bucket drop issues exactly one
// reschedule call; success keeps the optimistic board, failure resyncs from
// the fetcher before reporting the error. A same-bucket drop persists
// nothing: in-bucket order is visual only.
func (e *Engine) DragEnd(ctx context.Context) error {
	e.mu.Lock()
	if e.state != StateDragging {
		e.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeConflict, "no drag in progress")
	}

	drag := e.drag
	if drag.currentKey == drag.sourceKey {
		e.drag = nil
		e.state = StateIdle
		e.mu.Unlock()
		return nil
	}

	var date *types.Date
	if drag.currentKey != UnscheduledKey {
		parsed, err := types.ParseDate(drag.currentKey)
		if err != nil {
			e.mu.Unlock()
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "bucket key not a date")
		}
		date = &parsed
	}
	e.state = StateReconciling
	e.mu.Unlock()

	reschedErr := e.resched.Reschedule(ctx, drag.orderID, date)

	if reschedErr == nil {
		e.mu.Lock()
		e.drag = nil
		e.state = StateIdle
		e.mu.Unlock()
		return nil
	}

	// Failure path: never patch backwards, always resync from the source
	// of truth so local state cannot drift.
	if err := e.Resync(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resync after failed reschedule")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, reschedErr, "reschedule order")
}

// Cancel aborts an active gesture and restores the pre-drag snapshot.
// Idle and Reconciling are no-ops.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateDragging {
		return
	}
	e.partition = e.drag.snapshot
	e.drag = nil
	e.state = StateIdle
}

// Refresh fetches the authoritative order list and re-partitions. Starting a
// new refresh cancels the in-flight predecessor's context, and a superseded
// result is discarded so a late response never overwrites newer state.
func (e *Engine) Refresh(ctx context.Context) error {
	e.mu.Lock()
	if e.refreshCancel != nil {
		e.refreshCancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	e.refreshCancel = cancel
	e.refreshGen++
	gen := e.refreshGen
	base := e.base
	e.mu.Unlock()

	orders, err := e.fetch.FetchOrders(fetchCtx, base)
	cancel()

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.refreshGen {
		return ErrSuperseded
	}
	e.refreshCancel = nil
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch orders")
	}
	e.apply(orders)
	return nil
}

// Resync is the engine's only error-recovery path: a full refetch and
// re-partition, dropping whatever gesture was active.
func (e *Engine) Resync(ctx context.Context) error {
	return e.Refresh(ctx)
}

// apply re-partitions and drops any active gesture. Callers hold e.mu.
func (e *Engine) apply(orders []models.Order) {
	e.partition = schedule.New(e.base, e.window, orders, orderPickupDate)
	e.drag = nil
	e.state = StateIdle
}

// locate finds the bucket currently holding the order. Callers hold e.mu.
func (e *Engine) locate(orderID int64) (string, bool) {
	for _, key := range e.partition.Keys {
		for _, o := range e.partition.Buckets[key] {
			if o.ID == orderID {
				return key, true
			}
		}
	}
	for _, o := range e.partition.Unscheduled {
		if o.ID == orderID {
			return UnscheduledKey, true
		}
	}
	return "", false
}

// remove splices the order out of the named list. Callers hold e.mu.
func (e *Engine) remove(key string, orderID int64) (models.Order, bool) {
	list := e.partition.Unscheduled
	if key != UnscheduledKey {
		list = e.partition.Buckets[key]
	}
	for i, o := range list {
		if o.ID != orderID {
			continue
		}
		next := append(append([]models.Order(nil), list[:i]...), list[i+1:]...)
		if key == UnscheduledKey {
			e.partition.Unscheduled = next
		} else {
			e.partition.Buckets[key] = next
		}
		return o, true
	}
	return models.Order{}, false
}

// insert splices the order into the named list at index, appending when the
// index falls outside the list. Callers hold e.mu.
func (e *Engine) insert(key string, order models.Order, index int) {
	list := e.partition.Unscheduled
	if key != UnscheduledKey {
		list = e.partition.Buckets[key]
	}
	if index < 0 || index > len(list) {
		index = len(list)
	}
	next := make([]models.Order, 0, len(list)+1)
	next = append(next, list[:index]...)
	next = append(next, order)
	next = append(next, list[index:]...)
	if key == UnscheduledKey {
		e.partition.Unscheduled = next
	} else {
		e.partition.Buckets[key] = next
	}
}

func clonePartition(p schedule.Partition[models.Order]) schedule.Partition[models.Order] {
	out := schedule.Partition[models.Order]{
		Keys:        append([]string(nil), p.Keys...),
		Buckets:     make(map[string][]models.Order, len(p.Buckets)),
		Unscheduled: append([]models.Order(nil), p.Unscheduled...),
	}
	for key, bucket := range p.Buckets {
		out.Buckets[key] = append([]models.Order(nil), bucket...)
	}
	return out
}
