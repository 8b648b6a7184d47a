// Package imagepreview composes a set of source images into a single
// contact sheet. Sources are either remote URLs or raw byte buffers;
// each source is fetched and decoded independently and the results are
// laid out on a grid canvas sized to the largest image.
//
// The grid shape is a fixed policy over the image count: a single image
// fills the whole sheet, up to four images share a 2x2 grid and larger
// sets are laid out three columns wide. Images are never scaled, smaller
// images simply leave white padding in their cell.
//
// It ships with a server binary exposing the pipeline over HTTP and a
// small command line tool for rendering sheets to disk.
package imagepreview
