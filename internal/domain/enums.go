package domain

// Zone identifies the business line a manifest belongs to. Each zone selects
// its own extraction profile and label-classification policy.
type Zone string

const (
	ZoneAnymall   Zone = "anymall"
	ZoneHelloBear Zone = "hellobear"
	ZoneYummy     Zone = "yummy"
	ZoneHomey     Zone = "homey"
)

// ValidZones maps zone identifiers accepted by the upload endpoints.
var ValidZones = map[Zone]bool{
	ZoneAnymall:   true,
	ZoneHelloBear: true,
	ZoneYummy:     true,
	ZoneHomey:     true,
}

// ParseZone normalizes a raw zone path parameter (case and spaces) and
// reports whether it names a known zone.
func ParseZone(raw string) (Zone, bool) {
	z := Zone(normalizeZoneKey(raw))
	return z, ValidZones[z]
}

func normalizeZoneKey(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == ' ' {
			continue
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// LabelType is the outcome of classifying one line item. Exactly one value
// applies per item; NoPrint and Normal both mean no document is produced,
// but Normal additionally tells the operator a standard pre-printed label
// already covers the item.
type LabelType string

const (
	LabelFood          LabelType = "food"
	LabelInsectWarning LabelType = "insect_warning"
	LabelCautionOnly   LabelType = "caution_only"
	LabelRepack        LabelType = "repack"
	LabelNoPrint       LabelType = "no_print"
	LabelNormal        LabelType = "normal"
)

// NeedsPrint reports whether a print document is produced for this label type.
func (t LabelType) NeedsPrint() bool {
	switch t {
	case LabelFood, LabelInsectWarning, LabelCautionOnly, LabelRepack:
		return true
	}
	return false
}

// RowStatus buckets a catalog row by how much usable label data it carries.
// Ordering matters: richer buckets win when several rows share a product
// number.
type RowStatus string

const (
	RowStatusInsect  RowStatus = "insect"
	RowStatusFood    RowStatus = "food"
	RowStatusCaution RowStatus = "caution"
	RowStatusEmpty   RowStatus = "empty"
)

// Score returns the richness rank used to pick the best of several catalog
// rows matching one product number.
func (s RowStatus) Score() int {
	switch s {
	case RowStatusInsect:
		return 3
	case RowStatusFood:
		return 2
	case RowStatusCaution:
		return 1
	}
	return 0
}

// InspectionStatus tracks scanning progress of one checklist item.
type InspectionStatus string

const (
	InspectionPending   InspectionStatus = "pending"
	InspectionPartial   InspectionStatus = "partial"
	InspectionCompleted InspectionStatus = "completed"
)
