package phonefield

// ErrorRegion is the host surface that displays the field's error text.
type ErrorRegion interface {
	SetText(text string)
	Show()
	Hide()
}

type nopRegion struct{}

func (nopRegion) SetText(string) {}
func (nopRegion) Show()          {}
func (nopRegion) Hide()          {}

// RegionState is an ErrorRegion that only records what it was told. Hosts
// without a real display (CLIs, tests, server-side rendering) read it back.
type RegionState struct {
	Text    string
	Visible bool
}

func (r *RegionState) SetText(text string) { r.Text = text }
func (r *RegionState) Show()               { r.Visible = true }
func (r *RegionState) Hide()               { r.Visible = false }

// RegionUpdate is a computed error region change. Callers holding their own
// locks apply it after releasing them, since regions may call back into the
// host.
type RegionUpdate struct {
	region  ErrorRegion
	Text    string
	Visible bool
}

// Apply pushes the update to the region. The zero value does nothing.
func (u RegionUpdate) Apply() {
	if u.region == nil {
		return
	}
	u.region.SetText(u.Text)
	if u.Visible {
		u.region.Show()
	} else {
		u.region.Hide()
	}
}
