// Package code defines the closed set of error codes an application can
// report to its users.
//
// Codes are registered during startup assembly and the set is sealed before
// the first enumeration, so concurrent readers never need locking. Every
// registered code must have a message template in the default locale; the
// catalog package enforces this at startup.
//
// # Usage
//
//	var CodePaymentDeclined = code.Register("PAYMENT_DECLINED")
//
//	for _, c := range code.All() {
//	    ...
//	}
package code
