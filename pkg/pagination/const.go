package pagination

import "math"

// PageDefaultSize is the default page size if not specified
const PageDefaultSize = 20

// PageMaxSize is the maximum allowed page size
const PageMaxSize = 100

// PageMax is the highest page whose offset fits in an int at PageMaxSize
const PageMax = math.MaxInt / PageMaxSize
