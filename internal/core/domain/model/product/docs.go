// Package product provides the catalog item entity for the retail order
// management domain.
//
// A Product holds a unit price and a stock level and answers availability
// checks for order line items. Stock mutations are rejected whole when they
// would drive the level negative.
package product
