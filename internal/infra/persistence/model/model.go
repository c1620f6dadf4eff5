// Package model holds the GORM table structs of the persistence layer.
package model

// All returns every model managed by the service, in migration order.
func All() []any {
	return []any{
		&ListingModel{},
		&AuditEntryModel{},
		&NotificationOutboxModel{},
		&DeviceModel{},
	}
}
