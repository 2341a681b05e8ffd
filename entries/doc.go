// Package entries turns a liabilities listing into a merkle sum tree.
//
// A listing is a CSV file with a header row and one account per line:
//
//	username,balance
//	username,salt,balance
//
// Usernames are encoded as field elements by reading their UTF-8 bytes as a
// big endian integer. When a salt is present the tree commits to
// H(username, salt) rather than the bare username, so that leaves can not be
// matched against guessed usernames.
package entries
