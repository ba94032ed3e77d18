package plain

// Layout has no directive.
const Layout = "%s"
