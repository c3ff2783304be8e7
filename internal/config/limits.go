package config

const (
	// MaxTitleLength is the maximum length for novel, part and chapter
	// titles. Limited to 255 to fit in a conventional VARCHAR(255) and
	// keep titles short and descriptive.
	MaxTitleLength = 255

	// MaxLabelLength is the maximum length for short free-form tags:
	// status, genre, target audience, beat type, POV character, viewpoint.
	MaxLabelLength = 100

	// MaxTextLength is the maximum length for long-form prose fields:
	// summaries, loglines, notes, beat descriptions.
	MaxTextLength = 5000
)
