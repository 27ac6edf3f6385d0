package nav

import "testing"

func TestTwoStepRunsOnSecondPress(t *testing.T) {
	ran := 0
	var markers []string
	ts := NewTwoStep("delete", func() { ran++ }, func(m string) { markers = append(markers, m) })

	if ts.Press() {
		t.Fatal("first press must not run the action")
	}
	if !ts.Armed() || ran != 0 {
		t.Fatalf("expected armed and idle, armed=%v ran=%d", ts.Armed(), ran)
	}
	if len(markers) != 1 || markers[0] != "CONFIRM --> delete" {
		t.Errorf("unexpected markers %v", markers)
	}

	if !ts.Press() {
		t.Fatal("second press should run the action")
	}
	if ts.Armed() || ran != 1 {
		t.Errorf("expected disarmed after one run, armed=%v ran=%d", ts.Armed(), ran)
	}
}

func TestTwoStepDisarm(t *testing.T) {
	ran := false
	ts := NewTwoStep("x", func() { ran = true }, nil)

	ts.Press()
	ts.Disarm()
	ts.Press()

	if ran {
		t.Error("disarm should require two presses again")
	}
}
