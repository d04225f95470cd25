package urlsummary

const Version = "v0.1.0"
