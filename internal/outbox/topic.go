package outbox

// Topic is the intermediate outbox topic; events published into the
// database inside a transaction are forwarded to Redis from here after the
// transaction commits.
const Topic = "events_to_forward"
