package pacing

// HookPos defines the enum of possible hooking positions
type HookPos struct {
	Name string
}

// HookCtx is the context that holds all the information about the site that a
// hook is triggered
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accept Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// HookPosBeforeAdvance triggers before the pacing system advances its time.
// Item is the target time as a VTimeInSec.
var HookPosBeforeAdvance = &HookPos{Name: "BeforeAdvance"}

// HookPosAfterAdvance triggers after the pacing system advanced its time.
// Item is the new time as a VTimeInSec; Detail is the pace now in effect.
var HookPosAfterAdvance = &HookPos{Name: "AfterAdvance"}

// HookPosOccurrenceFired triggers when an event occurrence becomes active.
// Item is the Occurrence.
var HookPosOccurrenceFired = &HookPos{Name: "OccurrenceFired"}

// HookPosOccurrenceExpired triggers when an active occurrence's window ends.
// Item is the Occurrence.
var HookPosOccurrenceExpired = &HookPos{Name: "OccurrenceExpired"}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other type that implement
// the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// NewHookableBase creates a HookableBase object
func NewHookableBase() *HookableBase {
	h := new(HookableBase)
	h.Hooks = make([]Hook, 0)
	return h
}

// AcceptHook register a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook triggers the register Hooks
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
