package dilo

import "testing"

// linked reports whether the link between s and r is consistent in both
// directions.
func linked(s *Sender, r *Receiver) bool {
	return s != nil && r != nil && s.recv == r && r.send == s
}

func TestLinked(t *testing.T) {
	s, r := NewSender(), NewReceiver()
	if linked(s, r) {
		t.Fatal("unexpected link")
	}
	if err := s.SetReceiver(r); err != nil {
		t.Fatal(err)
	}
	if !linked(s, r) {
		t.Fatal("missing link")
	}
	s2 := NewSender()
	if err := s2.SetReceiver(r); err != nil {
		t.Fatal(err)
	}
	if linked(s, r) || !linked(s2, r) || s.recv != nil {
		t.Fatal("stale link")
	}
	s2.ClearReceiver()
	if linked(s2, r) || r.send != nil {
		t.Fatal("link not cleared")
	}
}

func TestRemove_unlinks(t *testing.T) {
	s, r := NewSender(), NewReceiver()
	if err := s.SetReceiver(r); err != nil {
		t.Fatal(err)
	}
	c := NewCircuit()
	if err := c.Add("s", s); err != nil {
		t.Fatal(err)
	}
	if err := c.Remove("s"); err != nil {
		t.Fatal(err)
	}
	if linked(s, r) || s.recv != nil || r.send != nil {
		t.Fatal("removed sender still linked")
	}

	if err := s.SetReceiver(r); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("r", r); err != nil {
		t.Fatal(err)
	}
	if err := c.Remove("r"); err != nil {
		t.Fatal(err)
	}
	if linked(s, r) || s.recv != nil || r.send != nil {
		t.Fatal("removed receiver still linked")
	}
}
