package negotiator

import (
	"context"
	"errors"
	"testing"

	catalogx "github.com/agrovaani/negotiation-agent/agent/catalog"
	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
	statex "github.com/agrovaani/negotiation-agent/agent/state"
)

type generateCall struct {
	turnCtx contractx.TurnContext
	recent  []contractx.Turn
}

type fakeGenerator struct {
	reply string
	err   error
	calls []generateCall
}

func (f *fakeGenerator) Generate(ctx context.Context, turnCtx contractx.TurnContext, recent []contractx.Turn) (string, error) {
	f.calls = append(f.calls, generateCall{
		turnCtx: turnCtx,
		recent:  append([]contractx.Turn(nil), recent...),
	})
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type failingStore struct {
	statex.Store
	saveErr error
}

func (f *failingStore) Save(ctx context.Context, st *statex.SessionState) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.Store.Save(ctx, st)
}

func newTestNegotiator(t *testing.T, gen contractx.ReplyGenerator) (*Negotiator, *statex.MapStore) {
	t.Helper()

	store := statex.NewMapStore()
	n, err := New(store, catalogx.MustLoadSeed(), gen)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return n, store
}

func ureaTurn(text string) TurnRequest {
	return TurnRequest{
		SessionID:    "s1",
		Channel:      statex.ChannelWeb,
		CustomerName: "Ramesh Traders",
		ProductName:  "Urea",
		Text:         text,
	}
}

func TestHandleTurnCounterOffer(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{reply: "₹83 me final karte hain, 25 bags pakka?"}
	n, store := newTestNegotiator(t, gen)

	res, err := n.HandleTurn(context.Background(), ureaTurn("can you do 82 per bag for 25 bags"))
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if res.Reply != gen.reply {
		t.Fatalf("reply = %q", res.Reply)
	}

	ctx := res.Context
	if ctx.Decision != contractx.DecisionCounter {
		t.Fatalf("decision = %s, want COUNTER", ctx.Decision)
	}
	// History price 82 gives base target 84; qty 25 > last 20 discounts to 83.
	if ctx.Reasoning.TargetPrice != 83 {
		t.Fatalf("target = %d, want 83", ctx.Reasoning.TargetPrice)
	}
	if len(ctx.Tags) != 1 || ctx.Tags[0] != "Relationship Leverage" {
		t.Fatalf("tags = %v", ctx.Tags)
	}
	if ctx.KnownQty == nil || *ctx.KnownQty != 25 || ctx.KnownOffer == nil || *ctx.KnownOffer != 82 {
		t.Fatalf("known fields = %v/%v", ctx.KnownQty, ctx.KnownOffer)
	}

	if len(gen.calls) != 1 {
		t.Fatalf("generator calls = %d", len(gen.calls))
	}
	recent := gen.calls[0].recent
	if len(recent) == 0 || recent[len(recent)-1].Text != "can you do 82 per bag for 25 bags" {
		t.Fatalf("generator should see the current customer turn last: %+v", recent)
	}

	saved, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	history := saved.History(statex.ChannelWeb)
	if len(history) != 3 {
		t.Fatalf("history length = %d, want greeting+customer+assistant", len(history))
	}
	if history[1].Role != contractx.RoleCustomer || history[2].Role != contractx.RoleAssistant {
		t.Fatalf("history roles = %+v", history)
	}
	entry, ok := saved.KnownEntry("Ramesh Traders", "Urea")
	if !ok || entry.Quantity == nil || *entry.Quantity != 25 || entry.Offer == nil || *entry.Offer != 82 {
		t.Fatalf("memory entry = %+v, ok=%v", entry, ok)
	}
}

func TestHandleTurnAsksWithoutOffer(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{reply: "Kitna rate soch rahe ho?"}
	n, _ := newTestNegotiator(t, gen)

	// Single-digit quantity so the price heuristic finds nothing.
	res, err := n.HandleTurn(context.Background(), ureaTurn("5 bags pahije"))
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if res.Context.Decision != contractx.DecisionAsk {
		t.Fatalf("decision = %s, want ASK", res.Context.Decision)
	}
	if res.Context.KnownQty == nil || *res.Context.KnownQty != 5 {
		t.Fatalf("known qty = %v, want 5", res.Context.KnownQty)
	}
	if res.Context.KnownOffer != nil {
		t.Fatalf("known offer should be unset, got %d", *res.Context.KnownOffer)
	}
}

func TestHandleTurnMemoryMergesAcrossTurns(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{reply: "ok"}
	n, store := newTestNegotiator(t, gen)

	if _, err := n.HandleTurn(context.Background(), ureaTurn("5 bags pahije")); err != nil {
		t.Fatalf("first turn error = %v", err)
	}
	if _, err := n.HandleTurn(context.Background(), ureaTurn("rate 85 chalega?")); err != nil {
		t.Fatalf("second turn error = %v", err)
	}

	saved, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entry, ok := saved.KnownEntry("Ramesh Traders", "Urea")
	if !ok {
		t.Fatal("memory entry missing")
	}
	if entry.Quantity == nil || *entry.Quantity != 5 {
		t.Fatalf("second turn must not erase quantity: %+v", entry)
	}
	if entry.Offer == nil || *entry.Offer != 85 {
		t.Fatalf("offer = %v, want 85", entry.Offer)
	}
}

func TestHandleTurnGeneratorFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("model timeout")
	gen := &fakeGenerator{err: wantErr}
	n, store := newTestNegotiator(t, gen)

	_, err := n.HandleTurn(context.Background(), ureaTurn("can you do 82 per bag"))
	if !errors.Is(err, wantErr) {
		t.Fatalf("HandleTurn() error = %v, want %v", err, wantErr)
	}

	// Nothing may be saved: no customer turn, no memory entry.
	if _, err := store.Load(context.Background(), "s1"); !errors.Is(err, statex.ErrStateNotFound) {
		t.Fatalf("Load() error = %v, want ErrStateNotFound", err)
	}
}

func TestHandleTurnSaveFailure(t *testing.T) {
	t.Parallel()

	saveErr := errors.New("redis down")
	store := &failingStore{Store: statex.NewMapStore(), saveErr: saveErr}
	n, err := New(store, catalogx.MustLoadSeed(), &fakeGenerator{reply: "ok"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = n.HandleTurn(context.Background(), ureaTurn("can you do 82 per bag"))
	if !errors.Is(err, saveErr) {
		t.Fatalf("HandleTurn() error = %v, want %v", err, saveErr)
	}
}

func TestHandleTurnValidation(t *testing.T) {
	t.Parallel()

	n, _ := newTestNegotiator(t, &fakeGenerator{reply: "ok"})

	cases := []struct {
		name    string
		req     TurnRequest
		wantErr error
	}{
		{"empty session", TurnRequest{Channel: statex.ChannelWeb, CustomerName: "Ramesh Traders", ProductName: "Urea", Text: "hi"}, ErrInvalidSession},
		{"empty text", ureaTurn("   "), ErrInvalidMessage},
		{"unknown customer", TurnRequest{SessionID: "s1", CustomerName: "Nobody", ProductName: "Urea", Text: "hi"}, contractx.ErrUnknownCustomer},
		{"unknown product", TurnRequest{SessionID: "s1", CustomerName: "Ramesh Traders", ProductName: "Gold", Text: "hi"}, contractx.ErrUnknownProduct},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := n.HandleTurn(context.Background(), tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("HandleTurn() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
