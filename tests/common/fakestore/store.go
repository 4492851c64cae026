//go:build unit || e2e

// Package fakestore is an in-memory shared.UnitOfWork. Transactions are
// serialized and roll back by restoring a snapshot, which is enough to check
// the ordering and compensation behavior of the booking commands.
package fakestore

import (
	"context"
	"sync"
	"time"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/offering"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Operation names recorded in Calls and accepted by Fail.
const (
	OpFindOffering       = "offerings.FindByID"
	OpCheckAvailability  = "availability.Check"
	OpDecreaseUnits      = "availability.Decrease"
	OpIncreaseUnits      = "availability.Increase"
	OpUpsertDay          = "availability.UpsertDay"
	OpFindDays           = "availability.FindDays"
	OpFindBooking        = "bookings.FindByID"
	OpFindBookingLocked  = "bookings.FindByIDForUpdate"
	OpFindByCustomer     = "bookings.FindByCustomer"
	OpSaveBooking        = "bookings.Save"
	OpFindApprovalLocked = "approvals.FindByIDForUpdate"
	OpSaveApproval       = "approvals.Save"
	OpBranchVendor       = "approvals.BranchVendor"
)

type dayKey struct {
	offeringID uuid.UUID
	date       string
}

type day struct {
	units   int
	blocked bool
}

type state struct {
	offerings map[uuid.UUID]*offering.Offering
	days      map[dayKey]day
	bookings  map[uuid.UUID]booking.Booking
	approvals map[uuid.UUID]approval.Request
	branches  map[uuid.UUID]uuid.UUID // branch -> vendor
}

func (s state) clone() state {
	c := state{
		offerings: make(map[uuid.UUID]*offering.Offering, len(s.offerings)),
		days:      make(map[dayKey]day, len(s.days)),
		bookings:  make(map[uuid.UUID]booking.Booking, len(s.bookings)),
		approvals: make(map[uuid.UUID]approval.Request, len(s.approvals)),
		branches:  make(map[uuid.UUID]uuid.UUID, len(s.branches)),
	}
	for k, v := range s.offerings {
		c.offerings[k] = v
	}
	for k, v := range s.days {
		c.days[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.approvals {
		c.approvals[k] = v
	}
	for k, v := range s.branches {
		c.branches[k] = v
	}
	return c
}

type Store struct {
	mu      sync.Mutex
	st      state
	calls   []string
	failOn  map[string]error
	commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		st: state{
			offerings: map[uuid.UUID]*offering.Offering{},
			days:      map[dayKey]day{},
			bookings:  map[uuid.UUID]booking.Booking{},
			approvals: map[uuid.UUID]approval.Request{},
			branches:  map[uuid.UUID]uuid.UUID{},
		},
		failOn: map[string]error{},
	}
}

func key(offeringID uuid.UUID, d time.Time) dayKey {
	return dayKey{offeringID: offeringID, date: availability.DayOf(d).Format(time.DateOnly)}
}

// Seeding and inspection helpers. They must not be called from inside Within.

func (s *Store) PutOffering(o *offering.Offering) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.offerings[o.ID()] = o
}

func (s *Store) PutDay(offeringID uuid.UUID, date time.Time, units int, blocked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.days[key(offeringID, date)] = day{units: units, blocked: blocked}
}

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.ID()] = *b
}

func (s *Store) PutApproval(r *approval.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.approvals[r.ID()] = *r
}

func (s *Store) PutBranch(branchID, vendorID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.branches[branchID] = vendorID
}

// Units returns the committed units of a ledger day and whether the day exists.
func (s *Store) Units(offeringID uuid.UUID, date time.Time) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.st.days[key(offeringID, date)]
	return d.units, ok
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.bookings[id]
	if !ok {
		return nil, false
	}
	return &b, true
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.bookings)
}

func (s *Store) Approval(id uuid.UUID) (*approval.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.approvals[id]
	if !ok {
		return nil, false
	}
	return &r, true
}

// Fail makes every later call of op return err until cleared with a nil err.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failOn, op)
		return
	}
	s.failOn[op] = err
}

// Calls lists the repository operations in the order they ran.
func (s *Store) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *Store) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &tx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	s.commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	err := fn(ctx, &tx{s: s})
	s.st = snapshot
	return err
}

// record must be called with mu held.
func (s *Store) record(op string) error {
	s.calls = append(s.calls, op)
	return s.failOn[op]
}

type tx struct {
	s *Store
}

func (t *tx) Offerings() shared.OfferingRepository        { return offeringRepo{s: t.s} }
func (t *tx) Availability() shared.AvailabilityRepository { return availabilityRepo{s: t.s} }
func (t *tx) Bookings() shared.BookingRepository          { return bookingRepo{s: t.s} }
func (t *tx) Approvals() shared.ApprovalRepository        { return approvalRepo{s: t.s} }

func (t *tx) Savepoint(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	snapshot := t.s.st.clone()
	if err := fn(ctx, t); err != nil {
		t.s.st = snapshot
		return err
	}
	return nil
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type offeringRepo struct{ s *Store }

func (r offeringRepo) FindByID(_ context.Context, id uuid.UUID) (*offering.Offering, error) {
	if err := r.s.record(OpFindOffering); err != nil {
		return nil, err
	}
	o, ok := r.s.st.offerings[id]
	if !ok {
		return nil, notFound("offering")
	}
	return o, nil
}

type availabilityRepo struct{ s *Store }

func (r availabilityRepo) eligible(offeringID uuid.UUID, days []time.Time, quantity int) bool {
	if len(days) == 0 {
		return false
	}
	for _, d := range days {
		row, ok := r.s.st.days[key(offeringID, d)]
		if !ok || row.blocked || row.units < quantity {
			return false
		}
	}
	return true
}

func (r availabilityRepo) CheckAvailability(_ context.Context, offeringID uuid.UUID, days []time.Time, quantity int) (bool, error) {
	if err := r.s.record(OpCheckAvailability); err != nil {
		return false, err
	}
	return r.eligible(offeringID, days, quantity), nil
}

func (r availabilityRepo) DecreaseUnits(_ context.Context, offeringID uuid.UUID, days []time.Time, quantity int) (bool, error) {
	if err := r.s.record(OpDecreaseUnits); err != nil {
		return false, err
	}
	if !r.eligible(offeringID, days, quantity) {
		return false, nil
	}
	for _, d := range days {
		k := key(offeringID, d)
		row := r.s.st.days[k]
		row.units -= quantity
		r.s.st.days[k] = row
	}
	return true, nil
}

func (r availabilityRepo) IncreaseUnits(_ context.Context, offeringID uuid.UUID, days []time.Time, quantity int) error {
	if err := r.s.record(OpIncreaseUnits); err != nil {
		return err
	}
	capacity := -1
	if o, ok := r.s.st.offerings[offeringID]; ok {
		capacity = o.MaxCapacity()
	}
	for _, d := range days {
		k := key(offeringID, d)
		row, ok := r.s.st.days[k]
		if !ok {
			continue
		}
		row.units += quantity
		if capacity >= 0 && row.units > capacity {
			row.units = capacity
		}
		r.s.st.days[k] = row
	}
	return nil
}

func (r availabilityRepo) UpsertDay(_ context.Context, rec *availability.Record) error {
	if err := r.s.record(OpUpsertDay); err != nil {
		return err
	}
	r.s.st.days[key(rec.OfferingID(), rec.Date())] = day{units: rec.AvailableUnits(), blocked: rec.IsBlocked()}
	return nil
}

func (r availabilityRepo) FindDays(_ context.Context, offeringID uuid.UUID, days []time.Time) ([]*availability.Record, error) {
	if err := r.s.record(OpFindDays); err != nil {
		return nil, err
	}
	var out []*availability.Record
	for _, d := range days {
		row, ok := r.s.st.days[key(offeringID, d)]
		if !ok {
			continue
		}
		rec, err := availability.NewRecord(offeringID, d, row.units, row.blocked)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) find(op string, id uuid.UUID) (*booking.Booking, error) {
	if err := r.s.record(op); err != nil {
		return nil, err
	}
	b, ok := r.s.st.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return &b, nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.find(OpFindBooking, id)
}

func (r bookingRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.find(OpFindBookingLocked, id)
}

func (r bookingRepo) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*booking.Booking, error) {
	if err := r.s.record(OpFindByCustomer); err != nil {
		return nil, err
	}
	out := make([]*booking.Booking, 0)
	for _, b := range r.s.st.bookings {
		if b.CustomerID() == customerID {
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r bookingRepo) Save(_ context.Context, b *booking.Booking) error {
	if err := r.s.record(OpSaveBooking); err != nil {
		return err
	}
	r.s.st.bookings[b.ID()] = *b
	return nil
}

type approvalRepo struct{ s *Store }

func (r approvalRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*approval.Request, error) {
	if err := r.s.record(OpFindApprovalLocked); err != nil {
		return nil, err
	}
	a, ok := r.s.st.approvals[id]
	if !ok {
		return nil, notFound("approval request")
	}
	return &a, nil
}

func (r approvalRepo) Save(_ context.Context, req *approval.Request) error {
	if err := r.s.record(OpSaveApproval); err != nil {
		return err
	}
	r.s.st.approvals[req.ID()] = *req
	return nil
}

func (r approvalRepo) BranchVendor(_ context.Context, branchID uuid.UUID) (uuid.UUID, error) {
	if err := r.s.record(OpBranchVendor); err != nil {
		return uuid.Nil, err
	}
	v, ok := r.s.st.branches[branchID]
	if !ok {
		return uuid.Nil, notFound("branch")
	}
	return v, nil
}

// Read-side adapters for the query services. Each call takes the store lock.

func (s *Store) OfferingReader() *OfferingReader         { return &OfferingReader{s: s} }
func (s *Store) AvailabilityReader() *AvailabilityReader { return &AvailabilityReader{s: s} }
func (s *Store) BookingReader() *BookingReader           { return &BookingReader{s: s} }

type OfferingReader struct{ s *Store }

func (r *OfferingReader) FindByID(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return offeringRepo{s: r.s}.FindByID(ctx, id)
}

type AvailabilityReader struct{ s *Store }

func (r *AvailabilityReader) CheckAvailability(ctx context.Context, offeringID uuid.UUID, days []time.Time, quantity int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return availabilityRepo{s: r.s}.CheckAvailability(ctx, offeringID, days, quantity)
}

func (r *AvailabilityReader) FindDays(ctx context.Context, offeringID uuid.UUID, days []time.Time) ([]*availability.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return availabilityRepo{s: r.s}.FindDays(ctx, offeringID, days)
}

type BookingReader struct{ s *Store }

func (r *BookingReader) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return bookingRepo{s: r.s}.FindByID(ctx, id)
}

func (r *BookingReader) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return bookingRepo{s: r.s}.FindByCustomer(ctx, customerID)
}
