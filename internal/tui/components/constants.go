package components

const (
	TaskCardHeight       = 4  // TaskCardHeight is the fixed height of a task card
	taskTitleMaxLength   = 24 // Maximum display length for task title before truncation
	columnContentWidth   = 30
	columnBorderOverhead = 3 // top border + bottom padding + bottom border
	headerLines          = 1 // column name and count
	topIndicatorLines    = 1 // empty line or "▲ more above"
)
