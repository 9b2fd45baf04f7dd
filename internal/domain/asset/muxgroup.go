package asset

// muxDisplayOrder fixes the order component groups appear in within a mux
// group. Subcategories not listed here never occur under Transmitter.
var muxDisplayOrder = []string{
	"Exciter",
	"Exciter/System Control",
	"Amplifier",
	"Pump",
	"Channel Combiner",
	"Heat Exchanger",
	"Humidifier",
	"System Control",
}

// ComponentGroup is one subcategory's assets within a mux group, naturally
// sorted.
type ComponentGroup struct {
	Subcategory string   `json:"subcategory"`
	Assets      []*Asset `json:"assets"`
}

// GroupByMux partitions a site's transmitter assets into the two mux chains
// using the specs mux tag. Assets without a recognized tag (the Transmitter
// System card) are excluded. Within each chain, assets are grouped by
// subcategory name in display order; empty groups are omitted.
// subcategoryNames maps subcategory id to its label.
func GroupByMux(assets []*Asset, subcategoryNames map[uint]string) map[MuxTag][]ComponentGroup {
	byTag := map[MuxTag]map[string][]*Asset{
		MuxTag12: {},
		MuxTag3:  {},
	}

	for _, a := range assets {
		tag := a.Specs.Mux()
		if tag == "" {
			continue
		}

		var subName string
		if a.SubcategoryID != nil {
			subName = subcategoryNames[*a.SubcategoryID]
		}
		if subName == "" || subName == "Transmitter System" {
			continue
		}

		byTag[tag][subName] = append(byTag[tag][subName], a)
	}

	out := make(map[MuxTag][]ComponentGroup, len(byTag))
	for tag, groups := range byTag {
		var ordered []ComponentGroup
		for _, subName := range muxDisplayOrder {
			list, ok := groups[subName]
			if !ok {
				continue
			}
			ordered = append(ordered, ComponentGroup{
				Subcategory: subName,
				Assets:      SortNaturally(list),
			})
		}
		out[tag] = ordered
	}

	return out
}
