// File: messages.go
// Title: User-Facing Messages
// Description: Stable feedback and error messages shared across commands.
//              These strings are part of the asserted surface; reword with
//              care.

package commands

// Domain error messages.
const (
	MessagePersonNotFound     = "No student found with the given identity"
	MessagePersonNotArchived  = "No archived student found with the given identity"
	MessageSessionNotFound    = "No session found with the given session ID"
	MessageDuplicatePerson    = "This student already exists in tutorbase"
	MessageDuplicateSession   = "This session already exists in tutorbase"
	MessageAlreadyEnrolled    = "This student is already enrolled in the session"
	MessageNotEnrolled        = "This student is not enrolled in the session"
	MessageNoAttendanceRecord = "No attendance record exists for this student and session"
)

// Success feedback formats.
const (
	MessageAddStudentSuccess     = "New student added: %s"
	MessageEditStudentSuccess    = "Edited student: %s"
	MessageDeleteStudentSuccess  = "Deleted student: %s"
	MessageRestoreStudentSuccess = "Restored student: %s"
	MessageStudentShown          = "Showing student: %s"
	MessageStudentsListed        = "Listed all students"
	MessageStudentsFound         = "%d students listed!"

	MessageAddSessionSuccess    = "New session added: %s"
	MessageDeleteSessionSuccess = "Deleted session: %s"
	MessageSessionShown         = "Showing session: %s"
	MessageSessionsListed       = "Listed all sessions"
	MessageSessionsFound        = "%d sessions listed!"

	MessageEnrolSuccess    = "Enrolled %s in session %d"
	MessageUnenrolSuccess  = "Unenrolled %s from session %d"
	MessageUnassignSuccess = "Unassigned %s from session %d"
	MessageMarkSuccess     = "Marked %s as present in session %d"
	MessageUnmarkSuccess   = "Marked %s as absent in session %d"

	MessageCleared = "Tutorbase has been cleared!"
	MessageExiting = "Exiting tutorbase as requested ..."
)
