package constants

const (
	MsgRequestCreated        = "payment request created"
	MsgPaymentCompleted      = "payment completed"
	MsgRequestPaid           = "payment request paid"
	MsgRequestDeclined       = "payment request declined"
	MsgRequestCancelled      = "payment request cancelled"
	MsgReminderSent          = "reminder sent"
	MsgNotificationRead      = "notification marked as read"
	MsgNotificationsRead     = "notifications marked as read"
	MsgFriendRequested       = "friend request sent"
	MsgFriendRemoved         = "friend removed"
	MsgSettingsUpdated       = "settings updated"
	MsgUserRenamed           = "display name updated"
	MsgCommentAdded          = "comment added"
	MsgChargeCreated         = "charge created"
	MsgTransactionsRetrieved = "transactions retrieved"
)
