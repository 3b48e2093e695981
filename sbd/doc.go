// Package sbd implements the Switchboard (SBD) structural-controllability
// model: degree-imbalance driver discovery, greedy walk packing, and
// closed-walk merging, plus a degree-difference edge classifier — following
// spec.md §4.D/F and netctrl's SwitchboardControllabilityModel
// (model/switchboard.cpp).
//
// Unlike the Liu model, SBD needs no bipartite matching: drivers and
// control paths come directly from in/out-degree bookkeeping over the
// graph and its weakly-connected components.
package sbd
