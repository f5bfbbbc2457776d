package schedule

import "planboard/internal/domain"

// Drag is the click-to-paint gesture. A click toggles the slot under it and
// turns drag mode on; hovering then copies that new state onto every slot
// passed over until the next click turns it off.
type Drag struct {
	Active bool
	Paint  bool // state applied to hovered slots

	last    domain.Slot
	hasLast bool
}

// Change records one slot whose selection a gesture modified
type Change struct {
	Slot     domain.Slot
	Selected bool
}

// Click handles a press on slot. It returns the change made, if any.
func (d *Drag) Click(b *Board, user string, slot domain.Slot) (*Change, error) {
	if d.Active {
		d.Cancel()
		return nil, nil
	}

	selected, err := b.Toggle(user, slot)
	if err != nil {
		return nil, err
	}
	d.Active = true
	d.Paint = selected
	d.last, d.hasLast = slot, true
	return &Change{Slot: slot, Selected: selected}, nil
}

// Hover applies the paint state to slot while drag mode is on
func (d *Drag) Hover(b *Board, user string, slot domain.Slot) (*Change, error) {
	if !d.Active || (d.hasLast && d.last == slot) {
		return nil, nil
	}
	d.last, d.hasLast = slot, true

	if b.IsSelected(user, slot) == d.Paint {
		return nil, nil
	}
	if err := b.Set(user, slot, d.Paint); err != nil {
		return nil, err
	}
	return &Change{Slot: slot, Selected: d.Paint}, nil
}

// Cancel turns drag mode off
func (d *Drag) Cancel() {
	*d = Drag{}
}
