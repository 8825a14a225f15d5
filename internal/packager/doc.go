// Package packager turns validated extension input into a phpBB extension
// skeleton. It resolves the selected components to template files, renders
// them into a staging tree, synthesizes composer.json and bundles the tree
// into a zip archive.
//
// Generation is linear: input, then tree, then archive. Every
// CreateExtension call wipes the staging root first, so a failed attempt is
// retried by calling it again.
package packager
