// Package media manages product image galleries.
//
// Gallery entries are keyed by a per-product id. File names are synthesized
// from a store-wide counter, so a name never repeats for the lifetime of a
// store. Each role flag (image, small_image, thumbnail, swatch_image) is held
// by at most one entry of a product: saving an entry strips its flags from
// every other entry of the same gallery.
package media
