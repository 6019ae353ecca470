// Package group implements part detection and ordering: it partitions a
// directory's numbered MP3 files into merge groups and sorts each group by
// the sequence number embedded in the filename.
//
// Two grouping policies exist because multi-part audio trees come in two
// shapes. Some directories mix several works, each numbered under its own
// title ("Tale - 01.mp3", "Other - 01.mp3"); prefix grouping keeps them
// apart. Other trees dedicate one directory per work, with parts numbered
// at either end of the filename; directory grouping collapses everything
// into a single group named after the directory. The policy is an explicit
// runtime mode, never inferred.
package group
