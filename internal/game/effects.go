package game

import "math"

// EffectSet tracks the player's active timed and persistent effects.
// Each effect kind carries an expiration timestamp and a stack count;
// the effective modifier for a stackable effect is base^stacks, so two
// fire-rate stacks at 0.9 yield a 0.81 cooldown multiplier.
//
// Every pickup adds a stack. Timed pickups of an already-active kind
// also refresh the timer; the stack raises the magnitude but the
// duration never extends past the latest pickup. Persistent pickups
// (expiration DurationPersistent) survive the expiry sweep; only life
// loss clears them.
type EffectSet struct {
	expires map[EffectKind]int64
	stacks  map[EffectKind]int

	fireRateBase   float64
	speedBoostBase float64

	// Cached effective modifiers, recomputed on every change
	speedModifier    float64
	cooldownModifier float64
}

// NewEffectSet creates an empty effect set using the given per-stack
// base modifiers.
func NewEffectSet(fireRateBase, speedBoostBase float64) *EffectSet {
	es := &EffectSet{
		expires:        make(map[EffectKind]int64),
		stacks:         make(map[EffectKind]int),
		fireRateBase:   fireRateBase,
		speedBoostBase: speedBoostBase,
	}
	es.recompute()
	return es
}

// Apply records a pickup of the given kind at time now. Every pickup
// adds a stack; timed effects (durationMs > 0) also refresh to
// now+durationMs, so stacking raises the magnitude without extending a
// timed duration past the latest pickup.
func (es *EffectSet) Apply(kind EffectKind, durationMs, now int64) {
	if durationMs == DurationPersistent {
		es.expires[kind] = DurationPersistent
	} else {
		es.expires[kind] = now + durationMs
	}
	es.stacks[kind]++
	es.recompute()
}

// Expire removes timed effects whose expiration has passed and returns
// the kinds that expired this call. Persistent effects are never swept.
func (es *EffectSet) Expire(now int64) []EffectKind {
	var expired []EffectKind
	for kind, at := range es.expires {
		if at == DurationPersistent {
			continue
		}
		if now >= at {
			expired = append(expired, kind)
			delete(es.expires, kind)
			delete(es.stacks, kind)
		}
	}
	if len(expired) > 0 {
		es.recompute()
	}
	return expired
}

// Clear drops every effect, timed and persistent alike. Called on life
// loss.
func (es *EffectSet) Clear() {
	es.expires = make(map[EffectKind]int64)
	es.stacks = make(map[EffectKind]int)
	es.recompute()
}

// Active reports whether the kind currently has at least one stack.
func (es *EffectSet) Active(kind EffectKind) bool {
	_, ok := es.expires[kind]
	return ok
}

// Stacks returns the stack count for the kind, zero if inactive.
func (es *EffectSet) Stacks(kind EffectKind) int {
	return es.stacks[kind]
}

// Remaining returns milliseconds until the kind expires, or
// DurationPersistent for persistent effects. Inactive kinds return 0.
func (es *EffectSet) Remaining(kind EffectKind, now int64) int64 {
	at, ok := es.expires[kind]
	if !ok {
		return 0
	}
	if at == DurationPersistent {
		return DurationPersistent
	}
	if at <= now {
		return 0
	}
	return at - now
}

// SpeedModifier returns the effective player movement multiplier.
func (es *EffectSet) SpeedModifier() float64 {
	return es.speedModifier
}

// CooldownModifier returns the effective shoot cooldown multiplier.
func (es *EffectSet) CooldownModifier() float64 {
	return es.cooldownModifier
}

func (es *EffectSet) recompute() {
	es.speedModifier = math.Pow(es.speedBoostBase, float64(es.stacks[EffectSpeedBoost]))
	es.cooldownModifier = math.Pow(es.fireRateBase, float64(es.stacks[EffectFireRate]))
}
