package main

// DefaultRollSamples is the default number of draws for the roll command.
const DefaultRollSamples = 10000
