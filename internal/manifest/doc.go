// Package manifest declares types whose Go source is not loaded, such as
// types from a service reached over RPC or generated at build time.
//
// A manifest lists types with their methods and struct fields in the same
// terms the source analyzer produces, so declared types go through the same
// resolution pipeline. Unlike Go, a manifest may give parameters a default
// value, including an explicit null:
//
//	version: "1"
//	package: billing.example.com/invoices
//	types:
//	  - name: InvoiceFilter
//	    role: input
//	    doc: Filters invoices.
//	    methods:
//	      - name: SetStatus
//	        doc: |
//	          Invoice status.
//	          gql:field type=String
//	        params:
//	          - name: status
//	            type: string
//	            default: open
//	      - name: SetDueBefore
//	        params:
//	          - name: due
//	            type: "*string"
//	            default: null
//	    fields:
//	      - name: Customer
//	        type: "*Customer"
//	        tag: 'gql:"customerId,type=ID"'
//
// A parameter without a type is untyped; resolving it needs an explicit type
// from an attribute or documentation.
package manifest
