package domain

type ItemStatusType string

const (
	ItemStatusOpen               ItemStatusType = "OPEN"
	ItemStatusEndingSoon         ItemStatusType = "ENDING_SOON"
	ItemStatusWaitingForPurchase ItemStatusType = "WAITING_FOR_PURCHASE"
	ItemStatusClosed             ItemStatusType = "CLOSED"
)
