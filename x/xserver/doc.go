/*
Package xserver records names that accounts of sibling chains register
through cross-chain calls.

The register method only accepts calls executed on behalf of a sibling
parachain. The account and the name are taken from the envelope and stored
in the registry bucket, overwriting any earlier registration of the account.
Accounts are not namespaced by the chain that sent them.
*/
package xserver
