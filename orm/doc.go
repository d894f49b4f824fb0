/*
Package orm stores typed models in a key value store.

The state is split into buckets, each one a key prefix holding models of a
single type under their primary key. The registry of names is a bucket of
registrations keyed by account.
*/
package orm
