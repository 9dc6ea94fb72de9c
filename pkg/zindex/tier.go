package zindex

// Tier partitions the stacking space so that surfaces of a higher tier
// always render above surfaces of a lower tier.
type Tier int

const (
	// TierPopup is the tier of ordinary floating windows.
	TierPopup Tier = iota
	// TierDropdown is used by menus and pickers opened from inside a popup.
	TierDropdown
	// TierModalInPopup is used by dialogs scoped to a single popup.
	TierModalInPopup
	// TierGlobalModal is used by application-wide modals.
	TierGlobalModal
)

// Base returns the minimum z-index handed out for the tier.
func (t Tier) Base() int {
	switch t {
	case TierDropdown:
		return 5000
	case TierModalInPopup:
		return 9000
	case TierGlobalModal:
		return 10000
	default:
		return 1000
	}
}

// String returns a string representation of the tier.
func (t Tier) String() string {
	switch t {
	case TierPopup:
		return "popup"
	case TierDropdown:
		return "dropdown"
	case TierModalInPopup:
		return "modal-in-popup"
	case TierGlobalModal:
		return "global-modal"
	default:
		return "unknown"
	}
}
