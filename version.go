package wrangler

// Version is the current wrangler release.
const Version = "0.4.0"
