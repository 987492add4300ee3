// Package sector holds the fixed table of recognised industry sectors.
//
// Each sector carries a score multiplier, display labels and an optional
// bespoke industry-outlook paragraph. Lookups are exact-match: anything
// outside the table, including the empty string, resolves to Unknown.
package sector

// Code identifies a recognised sector.
type Code int

const (
	Unknown Code = iota
	IT
	Pharma
	Auto
	Banking
	FMCG
	Infra
	Energy
	Metals
	Telecom
	Retail

	numCodes
)

// NeutralMultiplier applies to unknown or missing sectors.
const NeutralMultiplier = 1.0

// Info describes one sector table entry.
type Info struct {
	Code       string  `json:"code"`       // wire value, e.g. "IT"
	Label      string  `json:"label"`      // e.g. "IT & Software"
	HindiLabel string  `json:"hindiLabel"` // e.g. "आईटी और सॉफ्टवेयर"
	Multiplier float64 `json:"multiplier"`
	Outlook    string  `json:"-"` // bespoke outlook; empty means generic
}

// HasOutlook reports whether the sector has a bespoke outlook paragraph.
func (i Info) HasOutlook() bool {
	return i.Outlook != ""
}

var table = [numCodes]Info{
	Unknown: {Multiplier: NeutralMultiplier},
	IT: {
		Code: "IT", Label: "IT & Software", HindiLabel: "आईटी और सॉफ्टवेयर",
		Multiplier: 1.15,
		Outlook:    "भारतीय IT सेक्टर में AI, Cloud, और Digital Transformation की वजह से तेजी से वृद्धि हो रही है। वैश्विक मांग मजबूत बनी हुई है।",
	},
	Pharma: {
		Code: "Pharma", Label: "Pharmaceuticals", HindiLabel: "फार्मास्युटिकल्स",
		Multiplier: 1.10,
		Outlook:    "भारतीय फार्मा उद्योग वैश्विक स्तर पर प्रतिस्पर्धी है। जेनेरिक दवाओं और vaccine production में भारत अग्रणी है।",
	},
	Auto: {
		Code: "Auto", Label: "Automobile", HindiLabel: "ऑटोमोबाइल",
		Multiplier: 1.05,
		Outlook:    "EV transition और rising middle class से ऑटोमोबाइल सेक्टर में नई growth story बन रही है।",
	},
	Banking: {
		Code: "Banking", Label: "Banking & Finance", HindiLabel: "बैंकिंग और वित्त",
		Multiplier: 1.08,
		Outlook:    "डिजिटल बैंकिंग और financial inclusion से बैंकिंग सेक्टर में व्यापक अवसर हैं।",
	},
	FMCG: {
		Code: "FMCG", Label: "FMCG", HindiLabel: "एफएमसीजी",
		Multiplier: 1.03,
		Outlook:    "ग्रामीण बाजार की वृद्धि और premium products की मांग FMCG सेक्टर को मजबूती दे रही है।",
	},
	Infra: {
		Code: "Infra", Label: "Infrastructure", HindiLabel: "इंफ्रास्ट्रक्चर",
		Multiplier: 1.12,
	},
	Energy: {
		Code: "Energy", Label: "Energy & Power", HindiLabel: "ऊर्जा और बिजली",
		Multiplier: 1.07,
	},
	Metals: {
		Code: "Metals", Label: "Metals & Mining", HindiLabel: "धातु और खनन",
		Multiplier: 1.06,
	},
	Telecom: {
		Code: "Telecom", Label: "Telecom", HindiLabel: "टेलीकॉम",
		Multiplier: 1.04,
	},
	Retail: {
		Code: "Retail", Label: "Retail", HindiLabel: "रिटेल",
		Multiplier: 1.09,
	},
}

var byName = func() map[string]Code {
	m := make(map[string]Code, numCodes-1)
	for c := IT; c < numCodes; c++ {
		m[table[c].Code] = c
	}
	return m
}()

// Parse maps a wire value to its Code. The match is exact and
// case-sensitive; ok is false for anything not in the table.
func Parse(s string) (Code, bool) {
	c, ok := byName[s]
	if !ok {
		return Unknown, false
	}
	return c, true
}

// Info returns the table entry for c. Out-of-range codes get the
// Unknown entry.
func (c Code) Info() Info {
	if c < 0 || c >= numCodes {
		return table[Unknown]
	}
	return table[c]
}

// Multiplier returns the score multiplier for c.
func (c Code) Multiplier() float64 {
	return c.Info().Multiplier
}

// String returns the wire value, or "" for Unknown.
func (c Code) String() string {
	return c.Info().Code
}

// All returns the recognised sectors in display order.
func All() []Info {
	out := make([]Info, 0, numCodes-1)
	for c := IT; c < numCodes; c++ {
		out = append(out, table[c])
	}
	return out
}

// MultiplierFor is a convenience lookup by wire value.
func MultiplierFor(s string) float64 {
	c, _ := Parse(s)
	return c.Multiplier()
}
