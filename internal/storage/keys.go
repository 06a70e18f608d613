package storage

// Keys shared by the timer, the views and the collaborators.
const (
	KeyWorkDuration           = "workDuration"
	KeyBreakDuration          = "breakDuration"
	KeyLongBreakDuration      = "longBreakDuration"
	KeySessionsBeforeLong     = "sessionsBeforeLong"
	KeySessionsCompleted      = "sessionsCompleted"
	KeyTotalFocusMinutes      = "totalFocusMinutes"
	KeyTimerStyle             = "timerStyle"
	KeyAnimationIntensity     = "animationIntensity"
	KeyNotificationPermission = "notificationPermission"
	KeyTheme                  = "theme"
	KeyTasks                  = "tasks"
	KeyNotes                  = "notes"
)
