package graphql

// Operation documents sent to the backend. Field selections mirror the
// DTO shapes in dto.go.

const qGetAllCities = `query getAllCities($featured: Boolean, $page: Int, $size: Int) {
  getAllCities(featured: $featured, page: $page, size: $size) {
    content { id name featured imageUrl country { id name code } state { id name code } }
    totalPages totalElements number size
  }
}`

const qGetCityByID = `query getCityById($id: ID!) {
  getCityById(id: $id) {
    id name featured imageUrl
    country { id name code region { id name } }
    state { id name code }
  }
}`

const staySelection = `id name address latitude longitude description
    city { id name country { id name code } }
    stayType { id name }
    services { id name icon }
    units { id stayId stayNumber numberOfBeds capacity pricePerNight roomType }
    images { id url main }
    company { id userId name email phone description createdAt updatedAt }`

const qGetAllStays = `query getAllStays($page: Int, $size: Int) {
  getAllStays(page: $page, size: $size) {
    content { ` + staySelection + ` }
    totalPages totalElements number size
  }
}`

const qGetStayByID = `query getStayById($id: ID!) {
  getStayById(id: $id) { ` + staySelection + ` }
}`

const qGetStaysByCity = `query getStaysByCity($cityId: ID!) {
  getStaysByCity(cityId: $cityId) { ` + staySelection + ` }
}`

const qGetNearbyStays = `query getNearbyStays($lat: Float!, $lon: Float!, $radius: Float!) {
  getNearbyStays(lat: $lat, lon: $lon, radius: $radius) { ` + staySelection + ` }
}`

const qGetAllStayTypes = `query getAllStayTypes {
  getAllStayTypes { id name }
}`

const qGetAllServices = `query getAllServices {
  getAllServices { id name icon }
}`

const mCreateStayUnit = `mutation createStayUnit($input: StayUnitInput!) {
  createStayUnit(input: $input) { id stayId stayNumber numberOfBeds capacity pricePerNight roomType }
}`

const mUpdateStayUnit = `mutation updateStayUnit($id: ID!, $input: StayUnitInput!) {
  updateStayUnit(id: $id, input: $input) { id stayId stayNumber numberOfBeds capacity pricePerNight roomType }
}`

const mDeleteStayUnit = `mutation deleteStayUnit($id: ID!) {
  deleteStayUnit(id: $id)
}`

const tripSelection = `id name startDate endDate
    city { id name country { id name } }
    country { id name }
    stayUnits { id tripId startDate endDate
      stayUnit { id stayId stayNumber numberOfBeds capacity pricePerNight roomType } }`

const qGetItineraries = `query getItineraries {
  getItineraries { ` + tripSelection + ` }
}`

const qGetItineraryByID = `query getItineraryById($id: ID!) {
  getItineraryById(id: $id) { ` + tripSelection + ` }
}`

const mCreateItinerary = `mutation createItinerary($input: ItineraryInput!) {
  createItinerary(input: $input) { ` + tripSelection + ` }
}`

const mUpdateItinerary = `mutation updateItinerary($id: ID!, $input: ItineraryInput!) {
  updateItinerary(id: $id, input: $input) { ` + tripSelection + ` }
}`

const mDeleteItinerary = `mutation deleteItinerary($id: ID!) {
  deleteItinerary(id: $id)
}`

const mAddStayUnitToItinerary = `mutation addStayUnitToItinerary($itineraryId: ID!, $input: ItineraryStayUnitInput!) {
  addStayUnitToItinerary(itineraryId: $itineraryId, input: $input) {
    id tripId startDate endDate
    stayUnit { id stayId stayNumber numberOfBeds capacity pricePerNight roomType }
  }
}`

const mRemoveStayUnitFromItinerary = `mutation removeStayUnitFromItinerary($itineraryId: ID!, $stayUnitId: ID!) {
  removeStayUnitFromItinerary(itineraryId: $itineraryId, stayUnitId: $stayUnitId)
}`

const qGetAllCompanies = `query getAllCompanies {
  getAllCompanies { id userId name email phone description createdAt updatedAt }
}`

const qGetCompanyByID = `query getCompanyById($id: ID!) {
  getCompanyById(id: $id) { id userId name email phone description createdAt updatedAt }
}`

const mCreateCompany = `mutation createCompany($input: CompanyInput!) {
  createCompany(input: $input) { id userId name email phone description createdAt updatedAt }
}`

const mUpdateCompany = `mutation updateCompany($id: ID!, $input: CompanyInput!) {
  updateCompany(id: $id, input: $input) { id userId name email phone description createdAt updatedAt }
}`

const mLogin = `mutation login($email: String!, $password: String!) {
  login(email: $email, password: $password) { token }
}`

const mRegister = `mutation register($input: RegisterInput!) {
  register(input: $input) { token }
}`

const qGetUserProfile = `query getUserProfile {
  getUserProfile {
    email firstName lastName
    company { id userId name email phone description createdAt updatedAt }
  }
}`

const mChatWithAgent = `mutation chatWithAgent($message: String!, $sessionId: String) {
  chatWithAgent(message: $message, sessionId: $sessionId) {
    response sessionId
    hotels { ` + staySelection + ` }
  }
}`

const qGetSessionHistory = `query getSessionHistory($sessionId: String!) {
  getSessionHistory(sessionId: $sessionId) { role content timestamp }
}`
