package commerce

// GraphQL documents for the storefront API. Kept as raw constants so the
// wire shape is reviewable next to the decoding structs.

const cartCreateMutation = `
mutation cartCreate($input: CartInput!) {
    cartCreate(input: $input) {
        cart {
            id
            checkoutUrl
        }
        userErrors {
            field
            message
        }
    }
}`

const productByHandleQuery = `
query productByHandle($handle: String!) {
    product(handle: $handle) {
        id
        handle
        title
        description
        images(first: 1) {
            edges {
                node {
                    url
                    altText
                }
            }
        }
        variants(first: 20) {
            edges {
                node {
                    id
                    title
                    availableForSale
                    price {
                        amount
                        currencyCode
                    }
                }
            }
        }
    }
}`

const collectionByHandleQuery = `
query collectionByHandle($handle: String!, $first: Int!) {
    collection(handle: $handle) {
        id
        handle
        title
        description
        products(first: $first) {
            edges {
                node {
                    id
                    handle
                    title
                    description
                    images(first: 1) {
                        edges {
                            node {
                                url
                                altText
                            }
                        }
                    }
                    variants(first: 20) {
                        edges {
                            node {
                                id
                                title
                                availableForSale
                                price {
                                    amount
                                    currencyCode
                                }
                            }
                        }
                    }
                }
            }
        }
    }
}`
