package domain

import "time"

// NotificationType categorizes what prompted a notification.
type NotificationType string

const (
	NotifMessage    NotificationType = "message"
	NotifAssignment NotificationType = "assignment"
	NotifBirthday   NotificationType = "birthday"
)

// NotificationTarget addresses a notification to a single user or a whole
// group. Exactly one of the two fields is set.
type NotificationTarget struct {
	UserID  *int64 `json:"userId,omitempty"`
	GroupID *int64 `json:"groupId,omitempty"`
}

// Notification is a message delivered to one or more targets. Read state is
// per notification, not per target: the backend tracks targets in a separate
// collection but the entity carries them inline.
type Notification struct {
	ID        int64                `json:"id"`
	Title     string               `json:"title"`
	Body      string               `json:"body,omitempty"`
	Type      NotificationType     `json:"type"`
	Read      bool                 `json:"read"`
	Targets   []NotificationTarget `json:"targets"`
	CreatedAt time.Time            `json:"createdAt"`
}

// TargetsUser reports whether the notification addresses the given user
// directly or through one of their groups.
func (n *Notification) TargetsUser(userID int64, groupIDs []int64) bool {
	for _, t := range n.Targets {
		if t.UserID != nil && *t.UserID == userID {
			return true
		}
		if t.GroupID != nil {
			for _, g := range groupIDs {
				if *t.GroupID == g {
					return true
				}
			}
		}
	}
	return false
}
