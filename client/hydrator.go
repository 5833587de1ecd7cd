package client

import "context"

// State of the login-time hydration flow.
type State int

const (
	StateIdle State = iota
	StateSnapshotTaken
	StateMerged
	StateHydrated
)

// Snapshot is the guest state captured by value when a login is
// detected. Later mutation of the guest's live lists cannot affect a
// merge in flight.
type Snapshot struct {
	Cart     []CartLine
	Wishlist []string
}

// AccountState is the canonical server-side state after hydration.
type AccountState struct {
	Cart     []CartLine
	Wishlist []string
}

// Hydrator runs the guest-to-account reconciliation once per login:
// snapshot the guest lists, merge each non-empty one server-side, then
// fetch the canonical account state. On any failure the guest state is
// untouched and the flow can be retried; re-merging the same snapshot
// against the updated account is safe because cart merge adds
// quantities and wishlist merge is a set union.
type Hydrator struct {
	api      API
	state    State
	snapshot Snapshot
}

func NewHydrator(api API) *Hydrator {
	return &Hydrator{api: api}
}

func (h *Hydrator) State() State {
	return h.state
}

// OnLogin drives the flow to completion for one login event and
// returns the hydrated account state. Once hydrated, further calls do
// nothing for this session.
func (h *Hydrator) OnLogin(ctx context.Context, userID string, guestCart []CartLine, guestWishlist []string) (*AccountState, error) {
	if h.state == StateHydrated {
		return nil, nil
	}

	h.snapshot = Snapshot{
		Cart:     append([]CartLine(nil), guestCart...),
		Wishlist: append([]string(nil), guestWishlist...),
	}
	h.state = StateSnapshotTaken

	if len(h.snapshot.Cart) > 0 {
		if err := h.api.MergeGuestCart(ctx, userID, h.snapshot.Cart); err != nil {
			h.state = StateIdle
			return nil, err
		}
	}
	if len(h.snapshot.Wishlist) > 0 {
		if err := h.api.MergeGuestWishlist(ctx, userID, h.snapshot.Wishlist); err != nil {
			h.state = StateIdle
			return nil, err
		}
	}
	h.state = StateMerged

	cart, err := h.api.FetchCart(ctx, userID)
	if err != nil {
		h.state = StateIdle
		return nil, err
	}
	wishlist, err := h.api.FetchWishlist(ctx, userID)
	if err != nil {
		h.state = StateIdle
		return nil, err
	}

	// Snapshot references are dropped so a re-render cannot re-merge.
	h.snapshot = Snapshot{}
	h.state = StateHydrated

	return &AccountState{Cart: cart, Wishlist: wishlist}, nil
}

// Reset returns the hydrator to Idle for a new login session, e.g.
// after logout.
func (h *Hydrator) Reset() {
	h.snapshot = Snapshot{}
	h.state = StateIdle
}
