package services

// ServiceContainer bundles the service facades handed to route registration.
type ServiceContainer struct {
	Account  AccountSvcFacade
	Contact  ContactSvcFacade
	User     UserSvcFacade
	Sync     SyncSvc
	ErrorLog ErrorLogSvc
}
