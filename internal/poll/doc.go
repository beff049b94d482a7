// Package poll provides a bounded polling loop for conditions that become
// true asynchronously, such as a freshly started listener accepting
// connections or a released port refusing them.
package poll
