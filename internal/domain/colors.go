package domain

// Color is an RGB triple used for PDF text, fill, and rule styling.
type Color struct {
	R, G, B int
}

// Report palette. The dark navy theme matches the dashboard that consumes
// the summary record.
var (
	Navy   = Color{0x0a, 0x16, 0x28} // page and table background
	Deep   = Color{0x0d, 0x1f, 0x3c} // alternating row background
	Ocean  = Color{0x0e, 0x3a, 0x6e} // table head background and grid lines
	Cyan   = Color{0x00, 0xb4, 0xd8} // primary accent
	Teal   = Color{0x00, 0xe5, 0xd4} // secondary accent
	Danger = Color{0xe6, 0x39, 0x46}
	Warn   = Color{0xff, 0x6b, 0x35}
	Gold   = Color{0xff, 0xd1, 0x66}
	Safe   = Color{0x06, 0xd6, 0xa0}
	Light  = Color{0xe8, 0xf4, 0xfd} // default body text
	Muted  = Color{0x7f, 0xa8, 0xcc} // labels and fine print
	White  = Color{0xff, 0xff, 0xff}
)
