package parser

import (
	"sort"
	"strings"

	"github.com/lox/pokertracker/internal/hand"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	postSmallBlind = pattern(`^posts small blind (` + amountExpr + `)`)
	postBigBlind   = pattern(`^posts big blind (` + amountExpr + `)`)
	postDeadBlinds = pattern(`^posts small & big blinds (` + amountExpr + `)`)
	postAnte       = pattern(`^posts the ante (` + amountExpr + `)`)
	foldVerb       = pattern(`^folds\b`)
	checkVerb      = pattern(`^checks\b`)
	callVerb       = pattern(`^calls (` + amountExpr + `)`)
	betVerb        = pattern(`^bets (` + amountExpr + `)`)
	raiseVerb      = pattern(`^raises (` + amountExpr + `) to (` + amountExpr + `)`)

	uncalledLine = pattern(`^Uncalled bet \((` + amountExpr + `)\) returned to (.+)$`)
	actionShape  = pattern(`^(.+?): (?:posts|folds|checks|calls|bets|raises)\b`)
)

const allInMarker = "and is all-in"

// betting is the running state threaded through a hand's streets.
type betting struct {
	street     hand.Street
	pot        decimal.Decimal
	currentBet decimal.Decimal
	streetIn   map[string]decimal.Decimal
	stacks     map[string]decimal.Decimal
	// realRaise is set once someone raises preflop, so a player facing only
	// the big blind is not treated as facing a bet.
	realRaise bool
}

// actionParser turns street sections into ordered actions.
type actionParser struct {
	// names are sorted longest first so prefix resolution is unambiguous.
	names   []string
	logger  zerolog.Logger
	sb      decimal.Decimal
	state   betting
	actions []hand.Action
	refunds []hand.Refund
}

func newActionParser(players []hand.Player, sb decimal.Decimal, logger zerolog.Logger) *actionParser {
	ap := &actionParser{
		logger: logger,
		sb:     sb,
		state: betting{
			streetIn: make(map[string]decimal.Decimal),
			stacks:   make(map[string]decimal.Decimal),
		},
	}
	for _, pl := range players {
		ap.names = append(ap.names, pl.Name)
		ap.state.stacks[pl.Name] = pl.Stack
	}
	sort.SliceStable(ap.names, func(i, j int) bool { return len(ap.names[i]) > len(ap.names[j]) })
	return ap
}

// parse walks every street that was dealt, in order.
func (ap *actionParser) parse(secs sections) {
	for _, street := range hand.Streets {
		lines, ok := secs.streets[street]
		if !ok {
			continue
		}
		ap.startStreet(street)
		for _, line := range lines {
			ap.parseLine(line)
		}
	}
}

func (ap *actionParser) startStreet(street hand.Street) {
	ap.state.street = street
	ap.state.currentBet = decimal.Zero
	ap.state.streetIn = make(map[string]decimal.Decimal)
}

// resolve splits "Name: rest" using the seated names so that names with
// spaces or colons resolve correctly.
func (ap *actionParser) resolve(line string) (name, rest string, ok bool) {
	for _, n := range ap.names {
		if r, found := strings.CutPrefix(line, n+": "); found {
			return n, r, true
		}
	}
	return "", "", false
}

func (ap *actionParser) parseLine(line string) {
	if m := uncalledLine(line); m.ok {
		ap.refund(m.group(2), mustMoney(m.group(1)))
		return
	}

	name, rest, ok := ap.resolve(line)
	if !ok {
		if m := actionShape(line); m.ok {
			ap.logger.Debug().Str("player", m.group(1)).Err(ErrUnknownPlayer).Msg("Skipping action")
		}
		return
	}
	allIn := strings.Contains(rest, allInMarker)
	for _, v := range verbs {
		if m := v.match(rest); m.ok {
			v.apply(ap, name, m, allIn)
			return
		}
	}
}

// verb pairs an action grammar with the state update it drives.
type verb struct {
	match matcher
	apply func(ap *actionParser, name string, m match, allIn bool)
}

var verbs = []verb{
	{postSmallBlind, func(ap *actionParser, name string, m match, allIn bool) {
		amt := mustMoney(m.group(1))
		ap.post(name, hand.PostSmallBlind, amt, amt, allIn)
	}},
	{postBigBlind, func(ap *actionParser, name string, m match, allIn bool) {
		amt := mustMoney(m.group(1))
		ap.post(name, hand.PostBigBlind, amt, amt, allIn)
	}},
	{postDeadBlinds, func(ap *actionParser, name string, m match, allIn bool) {
		// The small blind part is dead: it goes in the pot but does not
		// count towards the player's bet on the street.
		amt := mustMoney(m.group(1))
		ap.post(name, hand.PostBigBlind, amt, decimal.Max(amt.Sub(ap.sb), decimal.Zero), allIn)
	}},
	{postAnte, func(ap *actionParser, name string, m match, allIn bool) {
		ap.post(name, hand.PostAnte, mustMoney(m.group(1)), decimal.Zero, allIn)
	}},
	{foldVerb, func(ap *actionParser, name string, _ match, allIn bool) {
		ap.voluntary(name, hand.Fold, decimal.Zero, ap.state.streetIn[name], allIn)
	}},
	{checkVerb, func(ap *actionParser, name string, _ match, allIn bool) {
		ap.voluntary(name, hand.Check, decimal.Zero, ap.state.streetIn[name], allIn)
	}},
	{callVerb, func(ap *actionParser, name string, m match, allIn bool) {
		amt := mustMoney(m.group(1))
		ap.voluntary(name, hand.Call, amt, ap.state.streetIn[name].Add(amt), allIn)
	}},
	{betVerb, func(ap *actionParser, name string, m match, allIn bool) {
		amt := mustMoney(m.group(1))
		ap.voluntary(name, hand.Bet, amt, ap.state.streetIn[name].Add(amt), allIn)
	}},
	{raiseVerb, func(ap *actionParser, name string, m match, allIn bool) {
		to := mustMoney(m.group(2))
		amt := decimal.Max(to.Sub(ap.state.streetIn[name]), decimal.Zero)
		ap.voluntary(name, hand.Raise, amt, to, allIn)
	}},
}

// post records a forced bet. paid goes into the pot; live counts towards
// the player's commitment on the street.
func (ap *actionParser) post(name string, kind hand.ActionKind, paid, live decimal.Decimal, allIn bool) {
	st := &ap.state
	stack := st.stacks[name]
	potBefore := st.pot

	st.pot = st.pot.Add(paid)
	st.stacks[name] = stack.Sub(paid)
	committed := st.streetIn[name].Add(live)
	st.streetIn[name] = committed
	if committed.GreaterThan(st.currentBet) {
		st.currentBet = committed
	}

	ap.actions = append(ap.actions, hand.Action{
		Player:      name,
		Street:      st.street,
		Kind:        kind,
		Amount:      paid,
		PotBefore:   potBefore,
		PotAfter:    st.pot,
		StackBefore: stack,
		IsAllIn:     allIn,
	})
}

// voluntary records a fold, check, call, bet or raise. amount is the money
// added by this action and total the player's resulting street commitment.
func (ap *actionParser) voluntary(name string, kind hand.ActionKind, amount, total decimal.Decimal, allIn bool) {
	st := &ap.state
	stack := st.stacks[name]
	potBefore := st.pot

	facing := st.currentBet.IsPositive()
	if st.street == hand.Preflop {
		facing = st.realRaise
	}

	aggressive := kind == hand.Bet || kind == hand.Raise
	if amount.IsPositive() {
		st.pot = st.pot.Add(amount)
		st.stacks[name] = stack.Sub(amount)
		st.streetIn[name] = total
	}
	if total.GreaterThan(st.currentBet) {
		st.currentBet = total
	}
	if aggressive && st.street == hand.Preflop {
		st.realRaise = true
	}

	raiseTo := decimal.Zero
	if aggressive {
		raiseTo = total
	}
	ap.actions = append(ap.actions, hand.Action{
		Player:       name,
		Street:       st.street,
		Kind:         kind,
		Amount:       amount,
		RaiseTo:      raiseTo,
		PotBefore:    potBefore,
		PotAfter:     st.pot,
		IsAggressive: aggressive,
		FacingBet:    facing,
		StackBefore:  stack,
		IsAllIn:      allIn,
	})
}

// refund applies an uncalled bet returned to a player. It is not an action;
// it reduces the pot and the player's commitment after the fact.
func (ap *actionParser) refund(name string, amount decimal.Decimal) {
	st := &ap.state
	if _, ok := st.stacks[name]; !ok {
		ap.logger.Debug().Str("player", name).Err(ErrUnknownPlayer).Msg("Skipping uncalled bet")
		return
	}
	st.pot = st.pot.Sub(amount)
	st.stacks[name] = st.stacks[name].Add(amount)
	st.streetIn[name] = st.streetIn[name].Sub(amount)
	ap.refunds = append(ap.refunds, hand.Refund{Player: name, Street: st.street, Amount: amount})
}
