// SPDX-License-Identifier: MIT

// Package report renders analyzer summaries and recent-play tables for
// people (aligned text) and programs (JSON).
//
// Every report carries a run identifier (a random UUID unless WithRunID
// fixes one) so output from repeated runs can be told apart.
package report
