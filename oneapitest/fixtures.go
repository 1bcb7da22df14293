package oneapitest

// Identifiers used throughout the fixtures.
const (
	ReturnOfTheKingID = "5cd95395de30eff6ebccde5d"
	FellowshipID      = "5cd95395de30eff6ebccde5c"
	TwoTowersID       = "5cd95395de30eff6ebccde5b"
	DeagolQuoteID     = "5cd96e05de30eff6ebcce7e9"
)

// MoviesBudgetUnder100 is the body of GET /movie?budgetInMillions<100.
const MoviesBudgetUnder100 = `{
  "docs": [
    {"_id": "5cd95395de30eff6ebccde5b", "name": "The Two Towers", "runtimeInMinutes": 179, "budgetInMillions": 94, "boxOfficeRevenueInMillions": 926, "academyAwardNominations": 6, "academyAwardWins": 2, "rottenTomatoesScore": 96},
    {"_id": "5cd95395de30eff6ebccde5c", "name": "The Fellowship of the Ring", "runtimeInMinutes": 178, "budgetInMillions": 93, "boxOfficeRevenueInMillions": 871.5, "academyAwardNominations": 13, "academyAwardWins": 4, "rottenTomatoesScore": 91},
    {"_id": "5cd95395de30eff6ebccde5d", "name": "The Return of the King", "runtimeInMinutes": 201, "budgetInMillions": 94, "boxOfficeRevenueInMillions": 1120, "academyAwardNominations": 11, "academyAwardWins": 11, "rottenTomatoesScore": 95}
  ],
  "total": 3, "limit": 1000, "offset": 0, "page": 1, "pages": 1
}`

// MoviesNameEl is the body of GET /movie?name=/el/i.
const MoviesNameEl = `{
  "docs": [
    {"_id": "5cd95395de30eff6ebccde5c", "name": "The Fellowship of the Ring", "runtimeInMinutes": 178, "budgetInMillions": 93, "boxOfficeRevenueInMillions": 871.5, "academyAwardNominations": 13, "academyAwardWins": 4, "rottenTomatoesScore": 91}
  ],
  "total": 1, "limit": 1000, "offset": 0, "page": 1, "pages": 1
}`

// MovieReturnOfTheKing is the body of GET /movie/5cd95395de30eff6ebccde5d.
const MovieReturnOfTheKing = `{
  "docs": [
    {"_id": "5cd95395de30eff6ebccde5d", "name": "The Return of the King", "runtimeInMinutes": 201, "budgetInMillions": 94, "boxOfficeRevenueInMillions": 1120, "academyAwardNominations": 11, "academyAwardWins": 11, "rottenTomatoesScore": 95}
  ],
  "total": 1, "limit": 1000, "offset": 0, "page": 1, "pages": 1
}`

// MovieQuotesLimit2 is the body of GET /movie/5cd95395de30eff6ebccde5d/quote?limit=2.
const MovieQuotesLimit2 = `{
  "docs": [
    {"_id": "5cd96e05de30eff6ebcce7e9", "dialog": "Deagol!!", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7e9"},
    {"_id": "5cd96e05de30eff6ebcce7ea", "dialog": "Deagol!", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7ea"}
  ],
  "total": 872, "limit": 2, "offset": 0, "page": 1, "pages": 436
}`

// QuotesLimit10 is the body of GET /quote?limit=10.
const QuotesLimit10 = `{
  "docs": [
    {"_id": "5cd96e05de30eff6ebcce7e9", "dialog": "Deagol!!", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7e9"},
    {"_id": "5cd96e05de30eff6ebcce7ea", "dialog": "Deagol!", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7ea"},
    {"_id": "5cd96e05de30eff6ebcce7eb", "dialog": "Deagol!", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7eb"},
    {"_id": "5cd96e05de30eff6ebcce7ec", "dialog": "Give us that! Deagol my love", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7ec"},
    {"_id": "5cd96e05de30eff6ebcce7ed", "dialog": "Why?", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfca7", "id": "5cd96e05de30eff6ebcce7ed"},
    {"_id": "5cd96e05de30eff6ebcce7ee", "dialog": "Because', it's my birthday and I wants it.", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7ee"},
    {"_id": "5cd96e05de30eff6ebcce7ef", "dialog": "Arrghh!", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfca7", "id": "5cd96e05de30eff6ebcce7ef"},
    {"_id": "5cd96e05de30eff6ebcce7f0", "dialog": "They cursed us!", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7f0"},
    {"_id": "5cd96e05de30eff6ebcce7f1", "dialog": "Murderer!", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7f1"},
    {"_id": "5cd96e05de30eff6ebcce7f2", "dialog": "'Murderer' they called us. They cursed us and drove us away.", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7f2"}
  ],
  "total": 2384, "limit": 10, "offset": 0, "page": 1, "pages": 239
}`

// QuoteDeagol is the body of GET /quote/5cd96e05de30eff6ebcce7e9.
const QuoteDeagol = `{
  "docs": [
    {"_id": "5cd96e05de30eff6ebcce7e9", "dialog": "Deagol!!", "movie": "5cd95395de30eff6ebccde5d", "character": "5cd99d4bde30eff6ebccfe9e", "id": "5cd96e05de30eff6ebcce7e9"}
  ],
  "total": 1, "limit": 1000, "offset": 0, "page": 1, "pages": 1
}`

// Unauthorized is what the API answers when the bearer token is missing.
const Unauthorized = `{"success": false, "message": "Unauthorized."}`

// NotFound is what the API answers for unknown routes and ids.
const NotFound = `{"success": false, "message": "Something went wrong."}`
