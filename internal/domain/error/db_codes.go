package error

// Numbered database error codes. The numbering follows the MySQL server codes the
// public API has always reported; storage adapters translate their native codes into these.
const (
	DBCodeUnknown             = 0
	DBCodeDuplicateEntry      = 1062
	DBCodeAccessDenied        = 1045
	DBCodeKeyTooLong          = 1071
	DBCodeNoSuchTable         = 1146
	DBCodeCannotAddForeignKey = 1215
	DBCodeNoReferencedRow     = 1216
	DBCodeDataTruncated       = 1265
	DBCodeNoDefaultValue      = 1364
	DBCodeCantConnect         = 2002
	DBCodeTooManyConnections  = 1040
	DBCodeSyntaxError         = 1064
	DBCodeNoReferencedRow2    = 1452
)

var dbErrorMessages = map[int]string{
	DBCodeDuplicateEntry:      "Email already taken",
	DBCodeAccessDenied:        "Access denied for user",
	DBCodeKeyTooLong:          "Key length too long",
	DBCodeNoSuchTable:         "Table does not exist",
	DBCodeCannotAddForeignKey: "Cannot add foreign key constraint",
	DBCodeNoReferencedRow:     "Cannot add/update a child row: a foreign key constraint fails",
	DBCodeDataTruncated:       "Data truncated for column",
	DBCodeNoDefaultValue:      "Field does not have a default value",
	DBCodeCantConnect:         "Can't connect to the database server",
	DBCodeTooManyConnections:  "Too many connections",
	DBCodeSyntaxError:         "syntax error",
	DBCodeNoReferencedRow2:    "Cannot add/update a child row: a foreign key constraint fails",
}

// DatabaseErrorMessage returns the client facing message for a numbered database error
func DatabaseErrorMessage(code int) string {
	if msg, ok := dbErrorMessages[code]; ok {
		return msg
	}
	return "Unknown error"
}
