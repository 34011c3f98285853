// Package stack implements the stack-of-stacks a program computes on.
//
// Every instruction pointer owns a StackStack holding at least one
// Stack. Most instructions touch only the top stack; the `{`, `}`, and
// `u` instructions manipulate the top two. Popping an empty stack
// yields zero rather than an error, per the language's "pick up the
// pieces and keep going" philosophy.
package stack
