// Package audit contains the append-only audit Record raised by the battery auditor.
package audit
