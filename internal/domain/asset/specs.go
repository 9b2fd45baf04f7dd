package asset

// MuxTag classifies a transmitter asset into its signal chain. The tag in
// specs, not the subcategory name, is the authoritative discriminator.
type MuxTag string

const (
	MuxTag12 MuxTag = "TX_MUX_1_2"
	MuxTag3  MuxTag = "TX_MUX_3"
)

// Known specs keys. Anything else in the bag is preserved untouched.
const (
	specKeyDeviceType    = "deviceType"
	specKeyMux           = "mux"
	specKeyRackComponent = "rackComponent"
	specKeySerial        = "serial"
	specKeyPartNumber    = "partNumber"
)

// Specs is the weakly-typed overflow bag persisted as JSON. The accessors
// below give the handful of keys the application actually reads a typed
// surface; unknown keys round-trip through load/store untouched.
type Specs map[string]any

func (s Specs) stringKey(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Mux returns the mux tag, or "" when the asset carries none (e.g. the
// Transmitter System card).
func (s Specs) Mux() MuxTag {
	v, ok := s.stringKey(specKeyMux)
	if !ok {
		return ""
	}
	tag := MuxTag(v)
	if tag != MuxTag12 && tag != MuxTag3 {
		return ""
	}
	return tag
}

func (s Specs) DeviceType() (string, bool) {
	return s.stringKey(specKeyDeviceType)
}

func (s Specs) RackComponent() (string, bool) {
	return s.stringKey(specKeyRackComponent)
}

func (s Specs) SerialOverride() (string, bool) {
	return s.stringKey(specKeySerial)
}

func (s Specs) PartNumberOverride() (string, bool) {
	return s.stringKey(specKeyPartNumber)
}

func (s Specs) WithMux(tag MuxTag) Specs {
	return s.with(specKeyMux, string(tag))
}

func (s Specs) WithDeviceType(t string) Specs {
	return s.with(specKeyDeviceType, t)
}

func (s Specs) WithRackComponent(rc string) Specs {
	return s.with(specKeyRackComponent, rc)
}

func (s Specs) WithSerialOverride(serial string) Specs {
	return s.with(specKeySerial, serial)
}

func (s Specs) WithPartNumberOverride(pn string) Specs {
	return s.with(specKeyPartNumber, pn)
}

func (s Specs) with(key, value string) Specs {
	out := s.Clone()
	if out == nil {
		out = Specs{}
	}
	out[key] = value
	return out
}

func (s Specs) Clone() Specs {
	if s == nil {
		return nil
	}
	out := make(Specs, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// MergeUnder overlays s on top of existing: keys already present in existing
// win, which is the preserve-manual-edits rule the seeder relies on.
func (s Specs) MergeUnder(existing Specs) Specs {
	merged := existing.Clone()
	if merged == nil {
		merged = Specs{}
	}
	for k, v := range s {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return merged
}
