package datalist

import "errors"

var (
	// ErrPriorityCollision means two columns claimed the same sort rank.
	ErrPriorityCollision = errors.New("datalist: duplicate sort priority")
	// ErrUnsortable means a value type without an ordering reached the comparator.
	ErrUnsortable = errors.New("datalist: value type has no ordering")
	// ErrTypeMismatch means a value's type differs from its column's declared type.
	ErrTypeMismatch = errors.New("datalist: value type mismatch")
	// ErrColumnRange means a column index is out of range.
	ErrColumnRange = errors.New("datalist: column index out of range")
	// ErrParse means edit text could not be converted to the column's type.
	ErrParse = errors.New("datalist: cannot parse value")
	// ErrNotEditable means the cell cannot be edited.
	ErrNotEditable = errors.New("datalist: cell is not editable")
	// ErrEditCancelled means an event handler cancelled the edit transition.
	ErrEditCancelled = errors.New("datalist: edit cancelled")
	// ErrDetachedRow means the row is not attached to the list.
	ErrDetachedRow = errors.New("datalist: row is not attached")

	ErrComboOddCount    = errors.New("datalist: combo source needs id;name pairs")
	ErrComboBadID       = errors.New("datalist: combo source id is not an integer")
	ErrComboDuplicateID = errors.New("datalist: combo source id repeated")
)
