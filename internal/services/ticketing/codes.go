package ticketing

import "riskdesk/internal/models"

// The remote ticketing system codes status and priority as integers. The
// dashboard speaks string enums, so every read maps code -> string and every
// write maps string -> code.

var statusFromCode = map[int]string{
	2: models.TicketStatusOpen,
	3: models.TicketStatusPending,
	4: models.TicketStatusResolved,
	5: models.TicketStatusClosed,
}

var statusToCode = map[string]int{
	models.TicketStatusOpen:     2,
	models.TicketStatusPending:  3,
	models.TicketStatusResolved: 4,
	models.TicketStatusClosed:   5,
}

var priorityFromCode = map[int]string{
	1: models.TicketPriorityLow,
	2: models.TicketPriorityMedium,
	3: models.TicketPriorityHigh,
	4: models.TicketPriorityUrgent,
}

var priorityToCode = map[string]int{
	models.TicketPriorityLow:    1,
	models.TicketPriorityMedium: 2,
	models.TicketPriorityHigh:   3,
	models.TicketPriorityUrgent: 4,
}

// StatusFromCode maps a remote status code to the internal enum, defaulting
// to open for unrecognized codes.
func StatusFromCode(code int) string {
	if s, ok := statusFromCode[code]; ok {
		return s
	}
	return models.TicketStatusOpen
}

// StatusToCode maps an internal status to the remote code. ok is false when
// the status is not one of the four known values.
func StatusToCode(status string) (int, bool) {
	code, ok := statusToCode[status]
	return code, ok
}

// PriorityFromCode maps a remote priority code to the internal enum,
// defaulting to medium for unrecognized codes.
func PriorityFromCode(code int) string {
	if p, ok := priorityFromCode[code]; ok {
		return p
	}
	return models.TicketPriorityMedium
}

// PriorityToCode maps an internal priority to the remote code.
func PriorityToCode(priority string) (int, bool) {
	code, ok := priorityToCode[priority]
	return code, ok
}
