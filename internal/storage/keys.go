package storage

// Keys of the durable layout. Every value is JSON encoded.
const (
	KeyBoards                 = "boards"                 // []models.Board
	KeyColumns                = "columns"                // []models.Column
	KeyTasks                  = "tasks"                  // []models.Task
	KeyCurrentBoardID         = "currentBoardId"         // string, "" when none
	KeyIsAdminSession         = "isAdminSession"         // bool
	KeyAdminPassword          = "adminPassword"          // string (bcrypt hash)
	KeyPasswordHasBeenChanged = "passwordHasBeenChanged" // bool
)
