// Package nav provides controls that guard an action behind a second press.
package nav

// ConfirmPrefix marks an armed control.
const ConfirmPrefix = "CONFIRM --> "

// TwoStep runs its action on the second press. The first press only arms it
// and reports the confirm marker through onArm.
type TwoStep struct {
	Label  string
	armed  bool
	action func()
	onArm  func(marker string)
}

// NewTwoStep creates a disarmed control. onArm may be nil.
func NewTwoStep(label string, action func(), onArm func(marker string)) *TwoStep {
	return &TwoStep{Label: label, action: action, onArm: onArm}
}

// Press arms the control, or runs the action if already armed.
// It reports whether the action ran.
func (t *TwoStep) Press() bool {
	if !t.armed {
		t.armed = true
		if t.onArm != nil {
			t.onArm(t.Marker())
		}
		return false
	}

	t.armed = false
	if t.action != nil {
		t.action()
	}
	return true
}

// Disarm returns the control to its initial state.
func (t *TwoStep) Disarm() {
	t.armed = false
}

// Armed reports whether the next press runs the action.
func (t *TwoStep) Armed() bool {
	return t.armed
}

// Marker is the text shown while armed.
func (t *TwoStep) Marker() string {
	return ConfirmPrefix + t.Label
}
