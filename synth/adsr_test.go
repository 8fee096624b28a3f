package synth

import "testing"

func newTestAdsr(attackMs, decayMs uint32, sustain int16, releaseMs uint32) (*Adsr, *Oscillator) {
	o := new(Oscillator)
	return NewAdsr(o, attackMs, decayMs, sustain, releaseMs), o
}

// advance steps a n times and returns the inner volume after each step.
func advance(a *Adsr, n int) []int16 {
	vols := make([]int16, n)
	for i := range vols {
		a.Advance()
		vols[i] = a.Vol()
	}
	return vols
}

func TestAdsrNewSilences(t *testing.T) {
	o := &Oscillator{}
	o.SetVol(MaxVol)
	o.SetFreq(440)
	a := NewAdsr(o, 10, 20, MaxVol/2, 5)
	if a.Vol() != 0 || a.Get() != 0 || a.Phase() != PhaseStop {
		t.Fatalf("vol=%d get=%d phase=%v", a.Vol(), a.Get(), a.Phase())
	}
	advance(a, 100)
	if a.Vol() != 0 || a.Phase() != PhaseStop {
		t.Fatalf("stop phase changed volume: %d %v", a.Vol(), a.Phase())
	}
}

func TestAdsrPhases(t *testing.T) {
	a, o := newTestAdsr(10, 20, MaxVol/3*2, 5)
	attack, decay, release := int(Ticks(10)), int(Ticks(20)), int(Ticks(5))
	sustainVol := a.SustainVol()
	if want := int16(int32(MaxVol) * int32(MaxVol/3*2) / int32(MaxVol)); sustainVol != want {
		t.Fatalf("sustain volume %d, want %d", sustainVol, want)
	}

	a.SetFreq(440)
	if a.Phase() != PhaseAttack {
		t.Fatalf("phase %v after note on", a.Phase())
	}
	vols := advance(a, attack)
	if a.Phase() != PhaseAttack {
		t.Fatalf("attack ended after %d ticks", attack)
	}
	vols = append(vols, advance(a, 1)...)
	if a.Phase() != PhaseDecay {
		t.Fatalf("phase %v after %d ticks", a.Phase(), attack+1)
	}
	if vols[0] != 0 || vols[len(vols)-1] != MaxVol {
		t.Fatalf("attack went from %d to %d", vols[0], vols[len(vols)-1])
	}
	for i := 1; i < len(vols); i++ {
		if vols[i] < vols[i-1] {
			t.Fatalf("attack decreased at tick %d: %d -> %d", i, vols[i-1], vols[i])
		}
	}

	vols = advance(a, decay+1)
	if a.Phase() != PhaseSustain {
		t.Fatalf("phase %v after decay", a.Phase())
	}
	if vols[0] != MaxVol || vols[len(vols)-1] != sustainVol {
		t.Fatalf("decay went from %d to %d", vols[0], vols[len(vols)-1])
	}
	for i := 1; i < len(vols); i++ {
		if vols[i] > vols[i-1] {
			t.Fatalf("decay increased at tick %d", i)
		}
	}

	for _, v := range advance(a, 1000) {
		if v != sustainVol {
			t.Fatalf("sustain moved to %d", v)
		}
	}
	if a.Get() == 0 {
		t.Fatal("no sound while sustaining")
	}

	a.Stop()
	vols = advance(a, release+1)
	if a.Phase() != PhaseStop {
		t.Fatalf("phase %v after release", a.Phase())
	}
	if vols[0] != sustainVol || vols[len(vols)-1] != 0 {
		t.Fatalf("release went from %d to %d", vols[0], vols[len(vols)-1])
	}
	for i := 1; i < len(vols); i++ {
		if vols[i] > vols[i-1] {
			t.Fatalf("release increased at tick %d", i)
		}
	}
	if o.Get() != 0 || !o.stopped {
		t.Fatal("inner oscillator still playing after release")
	}
}

func TestAdsrZeroLengthPhases(t *testing.T) {
	a, _ := newTestAdsr(0, 0, MaxVol/2, 0)
	a.SetFreq(440)
	a.Advance()
	if a.Vol() != MaxVol || a.Phase() != PhaseDecay {
		t.Fatalf("after zero attack: vol=%d phase=%v", a.Vol(), a.Phase())
	}
	a.Advance()
	if a.Vol() != a.SustainVol() || a.Phase() != PhaseSustain {
		t.Fatalf("after zero decay: vol=%d phase=%v", a.Vol(), a.Phase())
	}
	a.Stop()
	a.Advance()
	if a.Vol() != 0 || a.Phase() != PhaseStop || a.Get() != 0 {
		t.Fatalf("after zero release: vol=%d phase=%v", a.Vol(), a.Phase())
	}
}

func TestAdsrRetriggerMidDecay(t *testing.T) {
	a, _ := newTestAdsr(1, 10, MaxVol/2, 1)
	a.SetFreq(440)
	advance(a, int(Ticks(1))+1)
	if a.Phase() != PhaseDecay || a.Vol() != MaxVol {
		t.Fatalf("phase=%v vol=%d", a.Phase(), a.Vol())
	}
	advance(a, 100)
	// 32767 - 16384*99/480
	const from = 29388
	if a.Vol() != from {
		t.Fatalf("vol after 100 decay ticks: %d, want %d", a.Vol(), from)
	}

	a.SetFreq(880)
	if a.Phase() != PhaseAttack {
		t.Fatalf("phase %v after retrigger", a.Phase())
	}
	vols := advance(a, int(Ticks(1))+1)
	if vols[0] != from {
		t.Fatalf("retriggered attack starts at %d, want %d", vols[0], from)
	}
	// 29388 + 3379*24/48
	if vols[24] != 31077 {
		t.Fatalf("retriggered attack at tick 24: %d, want 31077", vols[24])
	}
	for i, v := range vols {
		if want := ComputeRatio(from, MaxVol, uint32(i), Ticks(1)); v != want {
			t.Fatalf("tick %d: %d, want %d", i, v, want)
		}
	}
}

func TestAdsrRetriggerDuringRelease(t *testing.T) {
	a, _ := newTestAdsr(0, 0, MaxVol, 10)
	a.SetFreq(440)
	advance(a, 2)
	a.Stop()
	advance(a, 240)
	v := a.Vol()
	if v <= 0 || v >= MaxVol {
		t.Fatalf("half released volume %d", v)
	}
	a.SetFreq(440)
	if a.from != v {
		t.Fatalf("attack starts at %d, want %d", a.from, v)
	}
}

func TestAdsrSetVol(t *testing.T) {
	a, _ := newTestAdsr(0, 0, MaxVol/2, 0)
	a.SetFreq(440)
	advance(a, 2)
	a.SetVol(MaxVol / 2)
	if a.Phase() != PhaseSustain {
		t.Fatalf("SetVol changed phase to %v", a.Phase())
	}
	if want := int16(int32(MaxVol/2) * int32(MaxVol/2) / int32(MaxVol)); a.SustainVol() != want {
		t.Fatalf("sustain volume %d, want %d", a.SustainVol(), want)
	}
	a.SetFreq(440)
	advance(a, 1)
	if a.Vol() != MaxVol/2 {
		t.Fatalf("peak %d, want %d", a.Vol(), MaxVol/2)
	}
	a.SetVol(-1)
	if a.vol != 0 {
		t.Fatalf("negative volume not clamped: %d", a.vol)
	}
}

func TestAdsrNested(t *testing.T) {
	o := new(Oscillator)
	inner := NewAdsr(o, 0, 0, MaxVol, 0)
	outer := NewAdsr(inner, 1, 0, MaxVol, 1)
	outer.SetFreq(440)
	for i := 0; i < 200; i++ {
		if outer.Vol() != o.Vol() || outer.Get() != o.Get() {
			t.Fatal("outer envelope does not see the oscillator")
		}
		Step(outer)
	}
	if o.Vol() == 0 || o.Get() == 0 {
		t.Fatal("nested envelope silent")
	}
}

func TestModify(t *testing.T) {
	a, o := newTestAdsr(0, 0, MaxVol, 0)
	Modify(a, SetVolume(1000))
	Modify(a, StartNote(440))
	if o.freq != 440 || a.Phase() != PhaseAttack {
		t.Fatalf("start: freq=%d phase=%v", o.freq, a.Phase())
	}
	a.Advance()
	if a.Vol() != 1000 {
		t.Fatalf("vol %d", a.Vol())
	}
	Modify(a, StopNote())
	if a.Phase() != PhaseRelease {
		t.Fatalf("stop: phase=%v", a.Phase())
	}
}

func TestAdsrReconfigure(t *testing.T) {
	a, _ := newTestAdsr(10, 0, MaxVol, 10)
	a.SetFreq(440)
	advance(a, 100)
	a.Reconfigure(1, 0, MaxVol/2, 1)
	if a.SustainVol() != MaxVol/2 {
		t.Fatalf("sustain volume %d", a.SustainVol())
	}
	vols := advance(a, int(Ticks(10))-100+1)
	if a.Phase() != PhaseDecay || vols[len(vols)-1] != MaxVol {
		t.Fatalf("attack in progress changed length: phase=%v vol=%d", a.Phase(), vols[len(vols)-1])
	}
	a.Advance()
	a.Stop()
	advance(a, int(Ticks(1))+1)
	if a.Phase() != PhaseStop {
		t.Fatalf("new release length not used: %v", a.Phase())
	}
}
