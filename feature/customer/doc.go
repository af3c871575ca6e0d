// Package customer implements the customer resource.
//
// # Components
//
//   - Gateway: the persistence boundary. Two implementations satisfy the same
//     contract: "sql" issues hand-written parameterized statements, "orm" uses
//     the GORM model API. database.gateway selects one at startup.
//   - Service: existence and uniqueness checks around the gateway, plus Reconcile,
//     which turns a partial ChangeRequest into the full record to persist.
//   - Handler: exposes the service over HTTP.
//   - Migrate: creates the customer table and verifies its columns.
//   - Loader: registers the feature with the application.
//
// # Uniqueness
//
// The email check in AddCustomer and Reconcile is a fast path for a readable
// error. The unique index on customer.email is the actual guarantee; a
// duplicate key reported by the store also surfaces as ErrConflict.
//
// # HTTP Endpoints
//
//   - GET    /api/v1/customers
//   - GET    /api/v1/customers/:customerId
//   - POST   /api/v1/customers
//   - PUT    /api/v1/customers/:customerId
//   - DELETE /api/v1/customers/:customerId
package customer
