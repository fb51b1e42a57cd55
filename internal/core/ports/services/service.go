package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Resource ResourceSvcFacade
	Employee EmployeeSvcFacade
	System   SystemSvcFacade
}

// CacheClearer is implemented by services holding in-process caches.
type CacheClearer interface {
	// ClearCache drops every cached entry.
	ClearCache()
}
